package catalog

import "github.com/amterp/swatch/internal/model"

// builtinColors is the catalog shipped with swatch: three collections whose
// members all list each other as related.
func builtinColors() []model.Color {
	return []model.Color{
		// Green collection - Pale Peppermint series
		color("9770", "Pale Peppermint-N", "#C8E6C9", "green", "9771", "9772", "9773", "9774", "9775", "9776"),
		color("9771", "Fresh Celery-N", "#A5D6A7", "green", "9770", "9772", "9773", "9774", "9775", "9776"),
		color("9772", "Palm Meadow-N", "#81C784", "green", "9770", "9771", "9773", "9774", "9775", "9776"),
		color("9773", "Matcha Muffin-N", "#66BB6A", "green", "9770", "9771", "9772", "9774", "9775", "9776"),
		color("9774", "Lush Tree Tops-N", "#4CAF50", "green", "9770", "9771", "9772", "9773", "9775", "9776"),
		color("9775", "Tulsi-N", "#43A047", "green", "9770", "9771", "9772", "9773", "9774", "9776"),
		color("9776", "Turtle Cove-N", "#388E3C", "green", "9770", "9771", "9772", "9773", "9774", "9775"),

		// Blue collection
		color("8801", "Cloud Nine-N", "#E3F2FD", "blue", "8802", "8803", "8804", "8805", "8806"),
		color("8802", "Sky Whisper-N", "#BBDEFB", "blue", "8801", "8803", "8804", "8805", "8806"),
		color("8803", "Ocean Breeze-N", "#90CAF9", "blue", "8801", "8802", "8804", "8805", "8806"),
		color("8804", "Coastal Blue-N", "#64B5F6", "blue", "8801", "8802", "8803", "8805", "8806"),
		color("8805", "Deep Waters-N", "#42A5F5", "blue", "8801", "8802", "8803", "8804", "8806"),
		color("8806", "Navy Dreams-N", "#2196F3", "blue", "8801", "8802", "8803", "8804", "8805"),

		// Warm collection
		color("7701", "Sunset Glow-N", "#FFF3E0", "orange", "7702", "7703", "7704", "7705"),
		color("7702", "Peach Sorbet-N", "#FFE0B2", "orange", "7701", "7703", "7704", "7705"),
		color("7703", "Warm Amber-N", "#FFCC80", "orange", "7701", "7702", "7704", "7705"),
		color("7704", "Burnt Orange-N", "#FFB74D", "orange", "7701", "7702", "7703", "7705"),
		color("7705", "Copper Glow-N", "#FFA726", "orange", "7701", "7702", "7703", "7704"),
	}
}

func color(code, name, hex, category string, related ...string) model.Color {
	return model.Color{
		ID:           code,
		Name:         name,
		Code:         code,
		Hex:          hex,
		Category:     category,
		RelatedCodes: related,
	}
}

// SuggestedCodes are the example codes offered to first-time users.
var SuggestedCodes = []string{"9770", "8801", "7701"}
