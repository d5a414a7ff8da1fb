package repo

// DefaultPageSize is the number of repositories shown per page
const DefaultPageSize = 6

// Page is one slice of a filtered repository list
type Page struct {
	Items []*Repository
	Index int // 1-based, always within [1, max(Count, 1)]
	Count int // 0 when the list is empty
	Size  int
	Total int
}

// PageCount returns ceil(total/size), or 0 for an empty list
func PageCount(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// ClampPage pins index into [1, max(count, 1)]
func ClampPage(index, count int) int {
	if index < 1 {
		return 1
	}
	if upper := max(count, 1); index > upper {
		return upper
	}
	return index
}

// NextPage advances only while index < count
func NextPage(index, count int) int {
	if index < count {
		return index + 1
	}
	return index
}

// PrevPage steps back only while index > 1
func PrevPage(index int) int {
	if index > 1 {
		return index - 1
	}
	return index
}

// Paginate returns the items visible on page index. A non-positive size falls back to DefaultPageSize.
func Paginate(items []*Repository, size, index int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}

	count := PageCount(len(items), size)
	index = ClampPage(index, count)

	start := (index - 1) * size
	end := min(start+size, len(items))

	visible := []*Repository{}
	if start < end {
		visible = items[start:end:end]
	}

	return Page{
		Items: visible,
		Index: index,
		Count: count,
		Size:  size,
		Total: len(items),
	}
}
