package service

import (
	"time"

	"repodash/internal/application/dto"
	"repodash/internal/domain/dashboard"
	"repodash/internal/domain/repo"
)

func toRepositoryResponse(r *repo.Repository) *dto.RepositoryResponse {
	return &dto.RepositoryResponse{
		ID:            r.GitHubID().Int64(),
		Name:          r.Name().String(),
		Description:   r.Description(),
		Fork:          r.IsFork(),
		Stars:         r.StargazersCount(),
		Forks:         r.ForksCount(),
		Language:      r.Language(),
		LanguageColor: repo.LanguageColor(r.Language()),
		HTMLURL:       r.HTMLURL().String(),
		UpdatedAt:     r.UpdatedAt().UTC().Format(time.RFC3339),
	}
}

func toRepositoryResponses(repos []*repo.Repository) []*dto.RepositoryResponse {
	out := make([]*dto.RepositoryResponse, 0, len(repos))
	for _, r := range repos {
		out = append(out, toRepositoryResponse(r))
	}
	return out
}

// ToViewResponse converts a derived session view for the API and the SSE stream
func ToViewResponse(v dashboard.View) *dto.DashboardViewResponse {
	return &dto.DashboardViewResponse{
		SessionID:     v.SessionID,
		Account:       v.Account,
		Search:        v.Search,
		Page:          v.Page.Index,
		PageCount:     v.Page.Count,
		PageSize:      v.Page.Size,
		Loading:       v.Loading,
		Error:         v.ErrorMessage(),
		ErrorCode:     v.ErrorCode(),
		Notice:        v.Notice,
		TotalOriginal: v.TotalOriginal,
		TotalFiltered: v.Page.Total,
		HasPrev:       v.Page.Index > 1,
		HasNext:       v.Page.Index < v.Page.Count,
		Repositories:  toRepositoryResponses(v.Page.Items),
	}
}

func toFetchRecordResponse(r *repo.FetchRecord) *dto.FetchRecordResponse {
	return &dto.FetchRecordResponse{
		ID:            r.ID.String(),
		Account:       r.Account,
		Outcome:       r.Outcome,
		ErrorCode:     r.ErrorCode,
		Message:       r.Message,
		FetchedCount:  r.FetchedCount,
		OriginalCount: r.OriginalCount,
		FetchedAt:     r.FetchedAt.UTC().Format(time.RFC3339),
	}
}
