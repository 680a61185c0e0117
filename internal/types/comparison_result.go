package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Choice values recorded for a comparison.
const (
	ChoiceA    = "a"
	ChoiceB    = "b"
	ChoiceNone = "none"
)

type ComparisonResult struct {
	ID                uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SessionID         uuid.UUID      `gorm:"type:uuid;index;not null" json:"session_id"`
	Session           *Session       `gorm:"constraint:OnDelete:CASCADE;foreignKey:SessionID;references:ID" json:"-"`
	ComparisonNumber  int            `gorm:"not null;column:comparison_number" json:"comparison_number"`
	Phase             string         `gorm:"not null;column:phase" json:"phase"`
	ComponentType     string         `gorm:"column:component_type" json:"component_type"`
	OptionAStyles     datatypes.JSON `gorm:"column:option_a_styles" json:"option_a_styles,omitempty"`
	OptionBStyles     datatypes.JSON `gorm:"column:option_b_styles" json:"option_b_styles,omitempty"`
	Choice            string         `gorm:"not null;column:choice" json:"choice"`
	QuestionResponses datatypes.JSON `gorm:"column:question_responses" json:"question_responses,omitempty"`
	DecisionTimeMS    int            `gorm:"column:decision_time_ms" json:"decision_time_ms"`
	CreatedAt         time.Time      `gorm:"not null;default:now()" json:"created_at"`
}

func (ComparisonResult) TableName() string { return "comparison_result" }
