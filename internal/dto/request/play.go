package request

type CreatePlayRequest struct {
	Title    string  `json:"title" validate:"required,max=100"`
	Duration int     `json:"duration" validate:"required,gte=1"`
	Price    float64 `json:"price" validate:"gte=0"`
	Genre    string  `json:"genre" validate:"max=20"`
	Synopsis string  `json:"synopsis" validate:"max=2000"`
}

type UpdatePlayRequest struct {
	Title    *string  `json:"title,omitempty" validate:"omitempty,max=100"`
	Duration *int     `json:"duration,omitempty" validate:"omitempty,gte=1"`
	Price    *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Genre    *string  `json:"genre,omitempty" validate:"omitempty,max=20"`
	Synopsis *string  `json:"synopsis,omitempty" validate:"omitempty,max=2000"`
}
