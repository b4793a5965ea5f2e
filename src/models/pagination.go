package models

import (
	"math"

	"go.mongodb.org/mongo-driver/bson"
)

// PaginationParams ค่าการแบ่งหน้า + ค้นหา + เรียงลำดับของหน้ารายการ event
type PaginationParams struct {
	Page   int    `json:"page" query:"page"  example:"1"`            // หมายเลขหน้าที่ต้องการ
	Limit  int    `json:"limit" query:"limit" example:"10"`          // จำนวนรายการต่อหน้า
	Search string `json:"search" query:"search" example:""`          // ค้นหาจาก title (Optional)
	SortBy string `json:"sortBy" query:"sortBy" example:"createdAt"` // ฟิลด์ที่ใช้เรียงลำดับ
	Order  string `json:"order" query:"order" example:"desc"`        // ทิศทางการเรียง (asc/desc)
}

// PaginatedResponse โครงสร้างการตอบกลับแบบแบ่งหน้า
type PaginatedResponse struct {
	Data        interface{} `json:"data"`
	Total       int64       `json:"total"`
	Page        int         `json:"page"`
	Limit       int         `json:"limit"`
	TotalPages  int         `json:"totalPages"`
	HasNext     bool        `json:"hasNext"`
	HasPrevious bool        `json:"hasPrevious"`
}

// DefaultPagination ค่าตั้งต้น - console แสดง event ใหม่สุดก่อน
func DefaultPagination() PaginationParams {
	return PaginationParams{
		Page:   1,
		Limit:  10,
		Search: "",
		SortBy: "createdAt",
		Order:  "desc",
	}
}

// NewPaginatedResponse สร้าง PaginatedResponse ใหม่
func NewPaginatedResponse(data interface{}, total int64, params PaginationParams) *PaginatedResponse {
	totalPages := 0
	if params.Limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(params.Limit)))
	}

	return &PaginatedResponse{
		Data:        data,
		Total:       total,
		Page:        params.Page,
		Limit:       params.Limit,
		TotalPages:  totalPages,
		HasNext:     params.Page < totalPages,
		HasPrevious: params.Page > 1,
	}
}

// GetSkip คำนวณจำนวนรายการที่ต้องข้าม
func (p *PaginationParams) GetSkip() int64 {
	return int64((p.Page - 1) * p.Limit)
}

// SortOrder แปลงเป็น sort document ของ Mongo - ฟิลด์ว่าง fallback เป็น createdAt
func (p *PaginationParams) SortOrder() bson.D {
	field := p.SortBy
	if field == "" {
		field = "createdAt"
	}
	order := 1 // 1 = asc, -1 = desc
	if p.Order == "desc" {
		order = -1
	}
	return bson.D{{Key: field, Value: order}}
}
