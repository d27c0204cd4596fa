package models

type RegisterRequest struct {
	User RegisterUser `json:"user"`
}

type RegisterUser struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	User LoginUser `json:"user"`
}

type LoginUser struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserRequest struct {
	User UserPatch `json:"user"`
}

// UserPatch carries partial update semantics: nil means "leave unchanged".
type UserPatch struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Bio      *string `json:"bio"`
	Image    *string `json:"image"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateArticleRequest struct {
	Article ArticleDraft `json:"article"`
}

type ArticleDraft struct {
	Title       string   `json:"title" validate:"required,min=1,max=255"`
	Description string   `json:"description" validate:"required"`
	Body        string   `json:"body" validate:"required"`
	TagList     []string `json:"tagList"`
}

type UpdateArticleRequest struct {
	Article ArticlePatch `json:"article"`
}

// ArticlePatch carries partial update semantics: nil means "leave unchanged".
// Only title, description and body are mutable; author and slug are managed
// by the service.
type ArticlePatch struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	Body        *string `json:"body"`
}

type ArticleListParams struct {
	Tag    string `form:"tag"`
	Author string `form:"author"`
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
}
