package domain

type Worker struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
