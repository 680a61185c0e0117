package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Interaction recording lifecycle states.
const (
	RecordingPending    = "pending"
	RecordingProcessing = "processing"
	RecordingComplete   = "complete"
	RecordingFailed     = "failed"
)

// InteractionRecording groups the frames and timing metrics captured during
// one interactive walkthrough of a UI under audit.
type InteractionRecording struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	SessionID  uuid.UUID      `gorm:"type:uuid;index;not null" json:"session_id"`
	Session    *Session       `gorm:"constraint:OnDelete:CASCADE;foreignKey:SessionID;references:ID" json:"-"`
	Name       string         `gorm:"column:name" json:"name"`
	Status     string         `gorm:"not null;default:'pending';column:status" json:"status"`
	FrameCount int            `gorm:"not null;default:0;column:frame_count" json:"frame_count"`
	DurationMS int            `gorm:"column:duration_ms" json:"duration_ms"`
	Result     datatypes.JSON `gorm:"column:result" json:"result,omitempty"`
	CreatedAt  time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (InteractionRecording) TableName() string { return "interaction_recording" }

type InteractionFrame struct {
	ID           uuid.UUID             `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	RecordingID  uuid.UUID             `gorm:"type:uuid;index;not null" json:"recording_id"`
	Recording    *InteractionRecording `gorm:"constraint:OnDelete:CASCADE;foreignKey:RecordingID;references:ID" json:"-"`
	FrameIndex   int                   `gorm:"not null;column:frame_index" json:"frame_index"`
	TimestampMS  int                   `gorm:"not null;column:timestamp_ms" json:"timestamp_ms"`
	Screenshot   string                `gorm:"column:screenshot" json:"screenshot,omitempty"`
	Observations datatypes.JSON        `gorm:"column:observations" json:"observations,omitempty"`
	CreatedAt    time.Time             `gorm:"not null;default:now()" json:"created_at"`
}

func (InteractionFrame) TableName() string { return "interaction_frame" }

// TemporalMetric is a single measured duration or counted occurrence from a
// recording, matched against temporal and behavioral rules.
type TemporalMetric struct {
	ID          uuid.UUID             `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	RecordingID uuid.UUID             `gorm:"type:uuid;index;not null" json:"recording_id"`
	Recording   *InteractionRecording `gorm:"constraint:OnDelete:CASCADE;foreignKey:RecordingID;references:ID" json:"-"`
	MetricType  string                `gorm:"not null;column:metric_type" json:"metric_type"`
	Element     string                `gorm:"column:element" json:"element"`
	DurationMS  int                   `gorm:"column:duration_ms" json:"duration_ms"`
	Details     datatypes.JSON        `gorm:"column:details" json:"details,omitempty"`
	CreatedAt   time.Time             `gorm:"not null;default:now()" json:"created_at"`
}

func (TemporalMetric) TableName() string { return "temporal_metric" }
