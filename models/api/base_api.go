package apimodels

type Response struct {
	Status  string      `json:"status"`            // success | fail
	Message string      `json:"message,omitempty"` // текст ошибки для клиента
	Data    interface{} `json:"data,omitempty"`
}

type ScrollerResponse struct {
	Response
	RowCount int64 `json:"row_count"` // всего записей без учета страницы
}

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
)

func NewError(message string) Response {
	return Response{
		Status:  StatusFail,
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: StatusSuccess,
		Data:   data,
	}
}

func NewScrollerResponse(data interface{}, rowCount int64) ScrollerResponse {
	return ScrollerResponse{
		Response: NewResponse(data),
		RowCount: rowCount,
	}
}

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

type Pagination struct {
	Limit int `json:"limit" validate:"gte=0,lte=100"` // записей на странице
	Page  int `json:"page" validate:"gte=0"`          // страница, с 1
}

// GetPage returns a 1-based page and a limit within MaxPageLimit.
func (r Pagination) GetPage() (page, limit int) {
	page, limit = 1, DefaultPageLimit
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}
