package dto

type VaultListResponse struct {
	Files []string `json:"files"`
}

type VaultUploadResponse struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}
