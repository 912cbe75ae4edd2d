package service

import (
	"reflect"
	"testing"

	"github.com/amterp/swatch/internal/catalog"
	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/model"
)

func colorCodes(colors []model.Color) []string {
	result := make([]string, len(colors))
	for i, c := range colors {
		result[i] = c.Code
	}
	return result
}

func TestCatalogService_Show(t *testing.T) {
	service := NewCatalogService(catalog.Default())

	detail, err := service.Show("8805")
	if err != nil {
		t.Fatalf("Show failed: %v", err)
	}
	if detail.Name != "Deep Waters-N" {
		t.Errorf("Name = %q", detail.Name)
	}
	want := []string{"8801", "8802", "8803", "8804", "8806"}
	if got := colorCodes(detail.Related); !reflect.DeepEqual(got, want) {
		t.Errorf("Related = %v, want %v", got, want)
	}
}

func TestCatalogService_ShowUnknown(t *testing.T) {
	service := NewCatalogService(catalog.Default())

	_, err := service.Show("0000")
	if !swerr.IsNotFound(err) {
		t.Errorf("Expected NotFound, got %v", err)
	}
}

func TestCatalogService_SearchMissIsNotAnError(t *testing.T) {
	service := NewCatalogService(catalog.Default())

	result := service.Search("0000")
	if result.Found || len(result.Colors) != 0 {
		t.Errorf("Search(0000) = %+v", result)
	}
}

func TestCatalogService_List(t *testing.T) {
	service := NewCatalogService(catalog.Default())

	tests := []struct {
		name  string
		input ListInput
		want  []string
	}{
		{"all", ListInput{}, colorCodes(catalog.Default().All())},
		{"category", ListInput{Category: "orange"}, []string{"7701", "7702", "7703", "7704", "7705"}},
		{"name", ListInput{Name: "glow"}, []string{"7701", "7705"}},
		{"category and name", ListInput{Category: "blue", Name: "glow"}, []string{}},
		{"name across categories", ListInput{Name: "n"}, colorCodes(catalog.Default().All())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.List(tt.input)
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			if got == nil {
				t.Fatal("List returned nil")
			}
			if codes := colorCodes(got); !reflect.DeepEqual(codes, tt.want) {
				t.Errorf("List(%+v) = %v, want %v", tt.input, codes, tt.want)
			}
		})
	}
}

func TestCatalogService_ListUnknownCategory(t *testing.T) {
	service := NewCatalogService(catalog.Default())

	_, err := service.List(ListInput{Category: "purple"})
	if !swerr.IsNotFound(err) {
		t.Errorf("Expected NotFound, got %v", err)
	}
}

func TestCatalogService_Match(t *testing.T) {
	service := NewCatalogService(catalog.Default())

	matches, err := service.Match("#E3F2FD", 2)
	if err != nil {
		t.Fatalf("Match failed: %v", err)
	}
	if len(matches) != 2 || matches[0].Color.Code != "8801" {
		t.Errorf("Match = %+v", matches)
	}

	if _, err := service.Match("#E3F2FD", -1); !swerr.IsValidationError(err) {
		t.Errorf("Expected validation error for negative limit, got %v", err)
	}
	if _, err := service.Match("nope", 1); !swerr.IsValidationError(err) {
		t.Errorf("Expected validation error for bad hex, got %v", err)
	}
}
