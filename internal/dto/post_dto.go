package dto

type CreatePostRequest struct {
	Caption  string `json:"caption"`
	ImageURL string `json:"image_url"`
	VideoURL string `json:"video_url"`
	Location string `json:"location"`
	Privacy  string `json:"privacy"`
}

type UpdatePostRequest struct {
	Caption  *string `json:"caption"`
	Location *string `json:"location"`
	Privacy  *string `json:"privacy"`
}

type ReactionRequest struct {
	Type string `json:"type"`
}
