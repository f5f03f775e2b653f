package payloop

import (
	"net/url"
	"strconv"
)

// Mode identifies which Payloop environment an object was created in.
type Mode string

const (
	ModeLive    Mode = "live"
	ModeTest    Mode = "test"
	ModeSandbox Mode = "sandbox"
)

// Pagination describes the position of one page within a list result.
type Pagination struct {
	TotalRecords int  `json:"totalRecords"`
	TotalPages   int  `json:"totalPages"`
	CurrentPage  int  `json:"currentPage"`
	NextPage     *int `json:"nextPage"`
	PrevPage     *int `json:"prevPage"`
}

// List is one page of a paginated listing.
type List[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// ListParams selects a page for the list endpoints. The zero value asks
// for the first page at the server's default size.
type ListParams struct {
	PageNumber int
	PageSize   int
}

func (p ListParams) values() url.Values {
	q := url.Values{}
	if p.PageNumber > 0 {
		q.Set("page_number", strconv.Itoa(p.PageNumber))
	}
	if p.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(p.PageSize))
	}
	return q
}

// CustomField is an extra input collected from the customer during
// checkout.
type CustomField struct {
	Type     string           `json:"type"`
	Key      string           `json:"key"`
	Label    string           `json:"label"`
	Optional bool             `json:"optional"`
	Text     *CustomFieldText `json:"text"`
}

// CustomFieldText constrains a text custom field.
type CustomFieldText struct {
	MaxLength int `json:"maxLength"`
	MinLength int `json:"minLength"`
}
