// Package suppliers produces placeholder supplier recommendations. The
// entries are templated from the material name and do not come from any
// real directory.
package suppliers

import (
	"fmt"
	"strings"

	"github.com/helmcode/rawmat/pkg/model"
)

// PerMaterial is how many suppliers are recommended for each material.
const PerMaterial = 2

// ForMaterial returns the placeholder suppliers for a material.
func ForMaterial(materialName string) []model.Supplier {
	clean := "Material"
	if fields := strings.Fields(materialName); len(fields) > 0 {
		clean = fields[0]
	}
	lowerName := strings.ToLower(materialName)
	lowerClean := strings.ToLower(clean)

	all := []model.Supplier{
		{
			Name:         fmt.Sprintf("Global %s Industries", clean),
			Location:     "Mumbai, Maharashtra, India",
			Rating:       4.5,
			PriceRange:   "$$ - Moderate",
			Speciality:   fmt.Sprintf("High-quality %s", lowerName),
			Contact:      "+91-22-1234-5678",
			Email:        fmt.Sprintf("sales@global%s.com", lowerClean),
			MinimumOrder: "500 kg",
			LeadTime:     "10-15 days",
		},
		{
			Name:         fmt.Sprintf("%s Supply Co.", clean),
			Location:     "Delhi, India",
			Rating:       4.2,
			PriceRange:   "$ - Budget Friendly",
			Speciality:   fmt.Sprintf("Bulk %s supplier", lowerName),
			Contact:      "+91-11-9876-5432",
			Email:        fmt.Sprintf("orders@%ssupply.com", lowerClean),
			MinimumOrder: "1000 kg",
			LeadTime:     "7-12 days",
		},
		{
			Name:         fmt.Sprintf("Premium %s Ltd.", clean),
			Location:     "Bangalore, Karnataka, India",
			Rating:       4.8,
			PriceRange:   "$$$ - Premium",
			Speciality:   fmt.Sprintf("Certified high-grade %s", lowerName),
			Contact:      "+91-80-5555-1234",
			Email:        fmt.Sprintf("info@premium%s.in", lowerClean),
			MinimumOrder: "250 kg",
			LeadTime:     "15-20 days",
		},
	}
	return all[:PerMaterial]
}
