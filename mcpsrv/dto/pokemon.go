package dto

type Pokemon struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Height      int      `json:"height"`
	Weight      int      `json:"weight"`
	Types       []string `json:"types"`
	SpriteURL   string   `json:"sprite_url"`
}

type TypeCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Palette struct {
	Theme      string            `json:"theme"`
	Background string            `json:"background"`
	Foreground string            `json:"foreground"`
	Accent     string            `json:"accent"`
	Card       string            `json:"card"`
	Muted      string            `json:"muted"`
	TypeColors map[string]string `json:"type_colors"`
}
