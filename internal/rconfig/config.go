// Package rconfig holds the plain data records that flow between the
// extraction-core packages (preprocess, articlescore, extract, postprocess)
// and a file-backed Bundle loader for the CLI, mirroring the teacher's own
// internal/config split between WithConfigFile and a chainable in-process
// builder.
package rconfig

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// PreprocessConfig gates the six preprocessing steps. All booleans default
// true; BaseURL is nil unless URL resolution is requested.
type PreprocessConfig struct {
	RemoveScripts  bool
	RemoveStyles   bool
	RemoveNoscript bool
	RemoveIframes  bool
	RemoveSVG      bool
	RemoveCanvas   bool
	RemoveUnlikely bool
	KeepPositive   bool
	RemoveHidden   bool
	ConvertURLs    bool
	BaseURL        *url.URL
}

func DefaultPreprocessConfig() PreprocessConfig {
	return PreprocessConfig{
		RemoveScripts:  true,
		RemoveStyles:   true,
		RemoveNoscript: true,
		RemoveIframes:  true,
		RemoveSVG:      true,
		RemoveCanvas:   true,
		RemoveUnlikely: true,
		KeepPositive:   true,
		RemoveHidden:   true,
		ConvertURLs:    true,
	}
}

// ScoreConfig parameterizes the tag/class/content-density scoring formulas.
type ScoreConfig struct {
	PositiveWeight       float64
	NegativeWeight       float64
	MaxCharDensityScore  float64
	MaxCommaDensityScore float64
	CharsPerPoint        float64
	MinScoreThreshold    float64
	MaxTopCandidates     int
}

func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		PositiveWeight:       25,
		NegativeWeight:       -25,
		MaxCharDensityScore:  3,
		MaxCommaDensityScore: 3,
		CharsPerPoint:        100,
		MinScoreThreshold:    20,
		MaxTopCandidates:     5,
	}
}

// PostProcessConfig gates the ten post-processing steps in §4.6 order.
type PostProcessConfig struct {
	RemoveEmptyNodes          bool
	MaxEmptyNodePasses        int
	RemoveHighLinkDensity     bool
	MaxLinkDensity            float64
	CleanNestedDivs           bool
	RemoveConditionalComments bool
	StripImages               bool
	KeepClasses               bool
	StripPatterns             *regexp.Regexp
	BaseURL                   *url.URL
}

func DefaultPostProcessConfig() PostProcessConfig {
	return PostProcessConfig{
		RemoveEmptyNodes:          true,
		MaxEmptyNodePasses:        10,
		RemoveHighLinkDensity:     true,
		MaxLinkDensity:            0.5,
		CleanNestedDivs:           true,
		RemoveConditionalComments: true,
	}
}

// ExtractConfig drives the top-candidate selection pipeline (C5).
type ExtractConfig struct {
	MinScoreThreshold float64
	MaxTopCandidates  int
	CharThreshold     int
	MaxElements       int
	SiblingThreshold  float64
	PostProcess       PostProcessConfig
}

func DefaultExtractConfig() ExtractConfig {
	return ExtractConfig{
		MinScoreThreshold: 10,
		MaxTopCandidates:  5,
		CharThreshold:     500,
		MaxElements:       1000,
		SiblingThreshold:  0.2,
		PostProcess:       DefaultPostProcessConfig(),
	}
}

// Bundle is the file-loadable aggregate of every tunable, used by the CLI
// to seed a Builder from a JSON or YAML config file.
type Bundle struct {
	Extract    ExtractConfig
	Preprocess PreprocessConfig
	Score      ScoreConfig
}

func DefaultBundle() Bundle {
	return Bundle{
		Extract:    DefaultExtractConfig(),
		Preprocess: DefaultPreprocessConfig(),
		Score:      DefaultScoreConfig(),
	}
}

// bundleDTO is the wire shape accepted from a config file. Zero-valued
// fields are left at their Bundle default, matching the teacher's
// newConfigFromDTO merge-by-non-zero discipline.
type bundleDTO struct {
	MinScoreThreshold     *float64 `json:"minScoreThreshold,omitempty" yaml:"minScoreThreshold,omitempty"`
	MaxTopCandidates      *int     `json:"maxTopCandidates,omitempty" yaml:"maxTopCandidates,omitempty"`
	CharThreshold         *int     `json:"charThreshold,omitempty" yaml:"charThreshold,omitempty"`
	MaxElements           *int     `json:"maxElements,omitempty" yaml:"maxElements,omitempty"`
	SiblingThreshold      *float64 `json:"siblingThreshold,omitempty" yaml:"siblingThreshold,omitempty"`
	RemoveEmptyNodes      *bool    `json:"removeEmptyNodes,omitempty" yaml:"removeEmptyNodes,omitempty"`
	RemoveHighLinkDensity *bool    `json:"removeHighLinkDensity,omitempty" yaml:"removeHighLinkDensity,omitempty"`
	MaxLinkDensity        *float64 `json:"maxLinkDensity,omitempty" yaml:"maxLinkDensity,omitempty"`
	CleanNestedDivs       *bool    `json:"cleanNestedDivs,omitempty" yaml:"cleanNestedDivs,omitempty"`
	StripImages           *bool    `json:"stripImages,omitempty" yaml:"stripImages,omitempty"`
	KeepClasses           *bool    `json:"keepClasses,omitempty" yaml:"keepClasses,omitempty"`
	StripPatterns         string   `json:"stripPatterns,omitempty" yaml:"stripPatterns,omitempty"`
	RemoveUnlikely        *bool    `json:"removeUnlikely,omitempty" yaml:"removeUnlikely,omitempty"`
	KeepPositive          *bool    `json:"keepPositive,omitempty" yaml:"keepPositive,omitempty"`
	RemoveHidden          *bool    `json:"removeHidden,omitempty" yaml:"removeHidden,omitempty"`
	ConvertURLs           *bool    `json:"convertUrls,omitempty" yaml:"convertUrls,omitempty"`
	PositiveWeight        *float64 `json:"positiveWeight,omitempty" yaml:"positiveWeight,omitempty"`
	NegativeWeight        *float64 `json:"negativeWeight,omitempty" yaml:"negativeWeight,omitempty"`
}

// FromFile loads a Bundle from a JSON or YAML file (by extension; .yml and
// .yaml decode as YAML, everything else as JSON) layered over defaults.
func FromFile(path string) (Bundle, error) {
	if _, err := os.Stat(path); err != nil {
		return Bundle{}, fmt.Errorf("%w: %s", ErrFileDoesNotExist, err.Error())
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Bundle{}, fmt.Errorf("%w: %s", ErrReadConfigFail, err.Error())
	}

	var dto bundleDTO
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		if err := yaml.Unmarshal(raw, &dto); err != nil {
			return Bundle{}, fmt.Errorf("%w: %s", ErrConfigParsingFail, err.Error())
		}
	} else {
		if err := json.Unmarshal(raw, &dto); err != nil {
			return Bundle{}, fmt.Errorf("%w: %s", ErrConfigParsingFail, err.Error())
		}
	}

	return bundleFromDTO(dto)
}

func bundleFromDTO(dto bundleDTO) (Bundle, error) {
	b := DefaultBundle()

	if dto.MinScoreThreshold != nil {
		b.Extract.MinScoreThreshold = *dto.MinScoreThreshold
	}
	if dto.MaxTopCandidates != nil {
		b.Extract.MaxTopCandidates = *dto.MaxTopCandidates
		b.Score.MaxTopCandidates = *dto.MaxTopCandidates
	}
	if dto.CharThreshold != nil {
		b.Extract.CharThreshold = *dto.CharThreshold
	}
	if dto.MaxElements != nil {
		b.Extract.MaxElements = *dto.MaxElements
	}
	if dto.SiblingThreshold != nil {
		b.Extract.SiblingThreshold = *dto.SiblingThreshold
	}
	if dto.RemoveEmptyNodes != nil {
		b.Extract.PostProcess.RemoveEmptyNodes = *dto.RemoveEmptyNodes
	}
	if dto.RemoveHighLinkDensity != nil {
		b.Extract.PostProcess.RemoveHighLinkDensity = *dto.RemoveHighLinkDensity
	}
	if dto.MaxLinkDensity != nil {
		b.Extract.PostProcess.MaxLinkDensity = *dto.MaxLinkDensity
	}
	if dto.CleanNestedDivs != nil {
		b.Extract.PostProcess.CleanNestedDivs = *dto.CleanNestedDivs
	}
	if dto.StripImages != nil {
		b.Extract.PostProcess.StripImages = *dto.StripImages
	}
	if dto.KeepClasses != nil {
		b.Extract.PostProcess.KeepClasses = *dto.KeepClasses
	}
	if dto.StripPatterns != "" {
		re, err := regexp.Compile(dto.StripPatterns)
		if err != nil {
			return Bundle{}, fmt.Errorf("%w: stripPatterns: %s", ErrInvalidConfig, err.Error())
		}
		b.Extract.PostProcess.StripPatterns = re
	}
	if dto.RemoveUnlikely != nil {
		b.Preprocess.RemoveUnlikely = *dto.RemoveUnlikely
	}
	if dto.KeepPositive != nil {
		b.Preprocess.KeepPositive = *dto.KeepPositive
	}
	if dto.RemoveHidden != nil {
		b.Preprocess.RemoveHidden = *dto.RemoveHidden
	}
	if dto.ConvertURLs != nil {
		b.Preprocess.ConvertURLs = *dto.ConvertURLs
	}
	if dto.PositiveWeight != nil {
		b.Score.PositiveWeight = *dto.PositiveWeight
	}
	if dto.NegativeWeight != nil {
		b.Score.NegativeWeight = *dto.NegativeWeight
	}

	return b, nil
}
