package dto

// VideoListQuery is the parsed query string of the video listing endpoint.
type VideoListQuery struct {
	Page     int64  `form:"page"`
	Limit    int64  `form:"limit"`
	Query    string `form:"query"`
	SortBy   string `form:"sortBy"`
	SortType string `form:"sortType"`
	UserID   string `form:"userId"`
}

// Normalize applies the pagination and sort defaults.
func (q *VideoListQuery) Normalize() {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.SortBy == "" {
		q.SortBy = "createdAt"
	}
}

type PublishVideoRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

type UpdateVideoRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

type CommentListQuery struct {
	Page  int64 `form:"page"`
	Limit int64 `form:"limit"`
}

func (q *CommentListQuery) Normalize() {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = 10
	}
}
