package request

type AdminAccessRequest struct {
	Password string `json:"password" binding:"required"`
}
