package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StyleRule is a persisted, session-scoped copy of a declarative rule. The
// canonical rule schema lives in internal/rules; this row adds ownership and
// edit tracking on top of it.
type StyleRule struct {
	ID                 uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SessionID          uuid.UUID      `gorm:"type:uuid;not null;index:idx_session_rule,unique,priority:1" json:"session_id"`
	Session            *Session       `gorm:"constraint:OnDelete:CASCADE;foreignKey:SessionID;references:ID" json:"-"`
	RuleID             string         `gorm:"not null;column:rule_id;index:idx_session_rule,unique,priority:2" json:"rule_id"`
	ComponentType      *string        `gorm:"column:component_type" json:"component_type,omitempty"` // nil => applies globally
	Property           string         `gorm:"not null;column:property" json:"property"`
	Operator           string         `gorm:"not null;column:operator" json:"operator"`
	Value              string         `gorm:"not null;column:value" json:"value"`
	Severity           string         `gorm:"not null;column:severity" json:"severity"`
	Confidence         float64        `gorm:"not null;default:0;column:confidence" json:"confidence"`
	Source             string         `gorm:"not null;column:source" json:"source"`
	Message            string         `gorm:"column:message" json:"message"`
	RuleCategory       string         `gorm:"column:rule_category" json:"rule_category,omitempty"`
	TimingConstraintMS *int           `gorm:"column:timing_constraint_ms" json:"timing_constraint_ms,omitempty"`
	CountProperty      string         `gorm:"column:count_property" json:"count_property,omitempty"`
	ZoneDefinition     datatypes.JSON `gorm:"column:zone_definition" json:"zone_definition,omitempty"`
	PatternIndicators  datatypes.JSON `gorm:"column:pattern_indicators" json:"pattern_indicators,omitempty"`
	IsModified         bool           `gorm:"not null;default:false;column:is_modified" json:"is_modified"`
	CreatedAt          time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (StyleRule) TableName() string { return "style_rule" }
