package announcement

type AnnouncementRequest struct {
	Title   string `json:"title" binding:"required,max=255"`
	Date    string `json:"date" binding:"required,ymd"`
	Content string `json:"content" binding:"required"`
}

type AnnouncementResponse struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Date      string  `json:"date"`
	Content   string  `json:"content"`
	CreatedBy *string `json:"created_by"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}
