package service

// CreateUserRequest carries the optional account fields. Nothing is
// required; absent fields are stored as null.
type CreateUserRequest struct {
	Email    *string `json:"email"`
	Login    *string `json:"login"`
	Password *string `json:"password"`
}

// UserPatch is a partial update. Nil fields are left untouched.
type UserPatch struct {
	Email    *string `json:"email"`
	Login    *string `json:"login"`
	Password *string `json:"password"`
}

type CreatePostRequest struct {
	AuthorID int64   `json:"authorId"`
	Title    *string `json:"title"`
	Content  *string `json:"content"`
}

// SubmitPostRequest is the page-form variant of post creation. Unlike the
// API path it requires title and content and auto-creates the author.
type SubmitPostRequest struct {
	AuthorID int64  `validate:"gte=0"`
	Title    string `validate:"required"`
	Content  string `validate:"required"`
}

// PostPatch is a partial update. AuthorID is merged without re-checking
// that the referenced user exists.
type PostPatch struct {
	AuthorID *int64  `json:"authorId"`
	Title    *string `json:"title"`
	Content  *string `json:"content"`
}
