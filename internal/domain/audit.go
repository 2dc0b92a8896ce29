package domain

import (
	"context"

	"procura/internal/core/id"
)

// AuditAction classifies an audited operation.
type AuditAction string

const (
	AuditActionCreate  AuditAction = "create"
	AuditActionUpdate  AuditAction = "update"
	AuditActionDelete  AuditAction = "delete"
	AuditActionSend    AuditAction = "send"
	AuditActionReceive AuditAction = "receive"
	AuditActionPayment AuditAction = "payment"
)

// AuditLogger records entity change history. The PostgreSQL implementation
// lives in infrastructure/storage/postgres. A nil AuditLogger is valid and
// disables auditing; services must guard for it.
type AuditLogger interface {
	// LogChange records a change entry for an entity.
	LogChange(ctx context.Context, entityType string, entityID id.ID, action AuditAction, changes map[string]any) error
}
