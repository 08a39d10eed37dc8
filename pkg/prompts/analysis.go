package prompts

import (
	"fmt"

	"github.com/helmcode/rawmat/pkg/model"
)

// ProbePrompt is the trivial prompt used to check connectivity.
const ProbePrompt = "Hello, respond with 'API Working'"

// BuildAnalysisPrompt asks for the raw materials of the requested product as a single JSON object.
func BuildAnalysisPrompt(req model.AnalysisRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	subject := req.Subject()

	return fmt.Sprintf(`Analyze the product %[1]q and provide a detailed breakdown of raw materials needed.

Please respond with ONLY a valid JSON object in the following format:
{
  "product_analysis": {
    "product_name": %[1]q,
    "category": "product category",
    "manufacturing_complexity": "low|medium|high"
  },
  "raw_materials": [
    {
      "material_name": "material name",
      "quantity": "amount with unit",
      "quality_grade": "specification",
      "purpose": "what it's used for",
      "alternatives": ["alternative1", "alternative2"]
    }
  ],
  "estimated_cost_range": "cost range in USD",
  "manufacturing_notes": "brief notes about the manufacturing process"
}

Provide realistic and detailed information for manufacturing %[1]q. Include all major raw materials needed.
Make sure the response is valid JSON only, no additional text before or after.`, subject), nil
}
