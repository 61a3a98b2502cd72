// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// Package hooks defines the lifecycle hooks a charm can be invoked for, and
// the classification of a hook name into a typed Event.
package hooks

// Kind identifies a particular kind of hook.
type Kind string

const (
	// None of these hooks are ever associated with a relation, storage
	// instance or workload; each of them represents a change to the state
	// of the unit or application as a whole.
	Install               Kind = "install"
	Start                 Kind = "start"
	ConfigChanged         Kind = "config-changed"
	UpgradeCharm          Kind = "upgrade-charm"
	Stop                  Kind = "stop"
	Remove                Kind = "remove"
	UpdateStatus          Kind = "update-status"
	LeaderElected         Kind = "leader-elected"
	LeaderSettingsChanged Kind = "leader-settings-changed"
	CollectMetrics        Kind = "collect-metrics"
	PreSeriesUpgrade      Kind = "pre-series-upgrade"
	PostSeriesUpgrade     Kind = "post-series-upgrade"
	PebbleCustomNotice    Kind = "pebble-custom-notice"

	// Secret hooks carry their details in the environment rather than
	// the hook name.
	SecretChanged Kind = "secret-changed"
	SecretExpire  Kind = "secret-expire"
	SecretRemoved Kind = "secret-removed"
	SecretRotate  Kind = "secret-rotate"

	// These hooks require an associated relation endpoint, whose name is
	// prefixed to the hook name when the hook is invoked.
	RelationCreated  Kind = "relation-created"
	RelationJoined   Kind = "relation-joined"
	RelationChanged  Kind = "relation-changed"
	RelationDeparted Kind = "relation-departed"
	RelationBroken   Kind = "relation-broken"

	// These hooks require an associated storage instance.
	StorageAttached Kind = "storage-attached"
	StorageDetached Kind = "storage-detached"

	// PebbleReady requires an associated workload container.
	PebbleReady Kind = "pebble-ready"
)

// unitHooks holds every hook kind which is invoked under its own name.
var unitHooks = []Kind{
	Install,
	ConfigChanged,
	Remove,
	UpdateStatus,
	UpgradeCharm,
	Start,
	Stop,
	LeaderElected,
	LeaderSettingsChanged,
	PebbleCustomNotice,
	PreSeriesUpgrade,
	PostSeriesUpgrade,
	SecretChanged,
	SecretExpire,
	SecretRemoved,
	SecretRotate,
	CollectMetrics,
}

// parameterizedHooks holds every hook kind which is invoked with a name
// prefixed to it, in the order in which hook names are matched against them.
var parameterizedHooks = []Kind{
	RelationJoined,
	RelationBroken,
	RelationChanged,
	RelationCreated,
	RelationDeparted,
	StorageAttached,
	StorageDetached,
	PebbleReady,
}

// UnitHooks returns all known hook kinds that are not parameterized.
func UnitHooks() []Kind {
	return append([]Kind(nil), unitHooks...)
}

// ParameterizedHooks returns all known hook kinds whose hook names carry an
// endpoint, storage or workload name prefix.
func ParameterizedHooks() []Kind {
	return append([]Kind(nil), parameterizedHooks...)
}

// IsRelation returns whether the Kind represents a relation hook.
func (kind Kind) IsRelation() bool {
	switch kind {
	case RelationCreated, RelationJoined, RelationChanged, RelationDeparted, RelationBroken:
		return true
	}
	return false
}

// IsStorage returns whether the Kind represents a storage hook.
func (kind Kind) IsStorage() bool {
	switch kind {
	case StorageAttached, StorageDetached:
		return true
	}
	return false
}

// IsWorkload returns whether the Kind represents a workload hook.
func (kind Kind) IsWorkload() bool {
	return kind == PebbleReady
}

// IsParameterized returns whether hooks of this Kind carry a name.
func (kind Kind) IsParameterized() bool {
	return kind.IsRelation() || kind.IsStorage() || kind.IsWorkload()
}

// String returns the hook kind as a string.
func (kind Kind) String() string {
	return string(kind)
}
