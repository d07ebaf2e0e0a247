package request

import "heavenstay/pkg/utils"

type PaginatedRequest struct {
	Page    int `json:"page" validate:"min=1"`
	PerPage int `json:"per_page" validate:"min=1,max=100"`
}

// Normalize clamps page and per_page so Offset and Limit are always usable.
func (p *PaginatedRequest) Normalize() {
	p.Page, p.PerPage = utils.NormalizePage(p.Page, p.PerPage)
}

func (p PaginatedRequest) Offset() int {
	return utils.CalculateOffset(p.Page, p.Limit())
}

func (p PaginatedRequest) Limit() int {
	_, perPage := utils.NormalizePage(p.Page, p.PerPage)
	return perPage
}
