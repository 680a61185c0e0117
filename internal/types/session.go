package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Elicitation phases, in the order a session moves through them.
const (
	PhaseColorExploration      = "color_exploration"
	PhaseTypographyExploration = "typography_exploration"
	PhaseComponentStudio       = "component_studio"
	PhaseTerritoryMapping      = "territory_mapping"
	PhaseDimensionIsolation    = "dimension_isolation"
	PhaseStatedPreferences     = "stated_preferences"
	PhaseComplete              = "complete"
)

// Middle-stage flows. FlowStudio walks the component studio after the
// exploration phases; FlowMapping runs territory mapping followed by adaptive
// dimension isolation.
const (
	FlowStudio  = "studio"
	FlowMapping = "mapping"
)

type Session struct {
	ID                      uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID                  uuid.UUID      `gorm:"type:uuid;index;not null" json:"user_id"`
	User                    *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	Name                    string         `gorm:"column:name" json:"name"`
	BrandColors             datatypes.JSON `gorm:"column:brand_colors" json:"brand_colors,omitempty"`
	ProjectDescription      string         `gorm:"column:project_description" json:"project_description,omitempty"`
	Phase                   string         `gorm:"not null;default:'color_exploration';column:phase" json:"phase"`
	Flow                    string         `gorm:"not null;default:'studio';column:flow" json:"flow"`
	ComparisonCount         int            `gorm:"not null;default:0;column:comparison_count" json:"comparison_count"`
	ConfidenceScore         float64        `gorm:"not null;default:0;column:confidence_score" json:"confidence_score"`
	EstablishedPreferences  datatypes.JSON `gorm:"column:established_preferences" json:"established_preferences,omitempty"`
	ChosenColors            datatypes.JSON `gorm:"column:chosen_colors" json:"chosen_colors,omitempty"`
	ChosenTypography        datatypes.JSON `gorm:"column:chosen_typography" json:"chosen_typography,omitempty"`
	StudioProgress          datatypes.JSON `gorm:"column:studio_progress" json:"studio_progress,omitempty"`
	CompletedAt             *time.Time     `gorm:"column:completed_at" json:"completed_at,omitempty"`
	CreatedAt               time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt               time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt               gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Session) TableName() string { return "session" }
