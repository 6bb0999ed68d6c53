package model

type TokenData struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type TokenClaim struct {
	UserID  string `json:"userId"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

type ResponseCustom struct {
	Rows       any  `json:"rows"`
	Limit      *int `json:"limit"`
	Page       *int `json:"page"`
	TotalCount int  `json:"totalCount"`
}

type ArrayId struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

type Pagination struct {
	Limit *int `json:"limit"`
	Page  *int `json:"page"`
}
