package domain

import "time"

// AuditKind names an account or content activity worth recording.
type AuditKind string

const (
	AuditSignup         AuditKind = "signup"
	AuditLogin          AuditKind = "login"
	AuditLoginFailed    AuditKind = "login_failed"
	AuditLogout         AuditKind = "logout"
	AuditArticleCreated AuditKind = "article_created"
	AuditArticleDeleted AuditKind = "article_deleted"
)

// AuditEvent is an append-only record of something an account did.
type AuditEvent struct {
	Kind   AuditKind `json:"kind" bson:"kind"`
	Email  string    `json:"email" bson:"email"`
	Detail string    `json:"detail,omitempty" bson:"detail,omitempty"`
	At     time.Time `json:"at" bson:"at"`
}
