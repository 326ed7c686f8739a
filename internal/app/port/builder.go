package port

import "github.com/orb3-protocol/l2beat/internal/domain/entity"

// ProjectDefinition composes the hand-written description of one project with
// facts taken from its discovery snapshot.
type ProjectDefinition interface {
	ID() string
	Define(d DiscoveryAccessor, t ClassificationTables) (*entity.ProjectRecord, error)
}

// RecordValidator checks a composed record for completeness.
type RecordValidator interface {
	Validate(record *entity.ProjectRecord) error
}

// RecordBuilder turns a definition and a snapshot into a validated record.
type RecordBuilder interface {
	Build(def ProjectDefinition, snapshot *entity.DiscoverySnapshot) (*entity.ProjectRecord, error)
}
