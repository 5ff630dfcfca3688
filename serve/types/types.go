package types

type StateRequest struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	P1     [][2]int `json:"p1"`
	P2     [][2]int `json:"p2"`
}

type MoveRequest struct {
	StateRequest
	Computer      int `json:"computer"`
	ComputerScore int `json:"computerScore"`
	HumanScore    int `json:"humanScore"`
	Depth         int `json:"depth,omitempty"`
}

type MoveResponse struct {
	Found bool   `json:"found"`
	Move  [2]int `json:"move"`
	Value int    `json:"value"`
	Depth int    `json:"depth"`
}

type LegalMove struct {
	Move        [2]int `json:"move"`
	Completions int    `json:"completions"`
}

type LegalResponse struct {
	ToMove int         `json:"toMove"`
	Moves  []LegalMove `json:"moves"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
