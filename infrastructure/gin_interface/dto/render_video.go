package dto

type RenderVideoRequest struct {
	ContentID string `json:"content_id" binding:"required"`
	Voice     string `json:"voice"`
}

type RenderVideoResponse struct {
	Success         bool    `json:"success"`
	ContentID       string  `json:"content_id"`
	Title           string  `json:"title"`
	VideoPath       string  `json:"video_path"`
	ScenesProcessed int     `json:"scenes_processed"`
	TotalDuration   float64 `json:"total_duration"`
}

type RenderVideoErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Detail  string `json:"detail,omitempty"`
}
