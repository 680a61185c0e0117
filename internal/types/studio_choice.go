package types

import (
	"time"

	"github.com/google/uuid"
)

// StudioChoice records the option a user locked in for one dimension of one
// component during the component studio. One row per (session, component,
// dimension); re-choosing upserts. FineTunedValue overrides SelectedValue
// when the user adjusted the slider past the preset options.
type StudioChoice struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SessionID      uuid.UUID `gorm:"type:uuid;not null;index:idx_studio_choice,unique,priority:1" json:"session_id"`
	Session        *Session  `gorm:"constraint:OnDelete:CASCADE;foreignKey:SessionID;references:ID" json:"-"`
	ComponentType  string    `gorm:"not null;column:component_type;index:idx_studio_choice,unique,priority:2" json:"component_type"`
	DimensionKey   string    `gorm:"not null;column:dimension_key;index:idx_studio_choice,unique,priority:3" json:"dimension_key"`
	OptionID       string    `gorm:"column:option_id" json:"option_id"`
	SelectedValue  string    `gorm:"not null;column:selected_value" json:"selected_value"`
	FineTunedValue *string   `gorm:"column:fine_tuned_value" json:"fine_tuned_value,omitempty"`
	CSSProperty    string    `gorm:"column:css_property" json:"css_property"`
	CreatedAt      time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

// FinalValue returns the fine-tuned value when present, otherwise the
// selected preset value.
func (c StudioChoice) FinalValue() string {
	if c.FineTunedValue != nil && *c.FineTunedValue != "" {
		return *c.FineTunedValue
	}
	return c.SelectedValue
}

func (StudioChoice) TableName() string { return "studio_choice" }
