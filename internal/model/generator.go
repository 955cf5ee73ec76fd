package model

// GenerateRequest represents a password generation request.
// Pointer bools distinguish a missing flag (nil -> default true) from an
// explicit false.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Digits    *bool `json:"digits"`
	Symbols   *bool `json:"symbols"`
}

// StrengthResponse grades a password configuration.
type StrengthResponse struct {
	Score int    `json:"score"`
	Label string `json:"label"`
}

// GenerateResponse carries a freshly generated password and its grade.
type GenerateResponse struct {
	Password string           `json:"password"`
	Length   int              `json:"length"`
	Strength StrengthResponse `json:"strength"`
}

// StrengthRequest asks for the grade of a hypothetical password. It carries
// only the length and the category flags, never the password itself. Flags
// default to false: a grade reflects exactly what the client says is enabled.
type StrengthRequest struct {
	Length    int  `json:"length"`
	Uppercase bool `json:"uppercase"`
	Lowercase bool `json:"lowercase"`
	Digits    bool `json:"digits"`
	Symbols   bool `json:"symbols"`
}
