package domain

// RebuildReason explains why a database rebuild is required.
type RebuildReason string

const (
	// ReasonForced is set when the caller explicitly asked for a rebuild.
	ReasonForced RebuildReason = "forced"
	// ReasonCacheDisabled is set when caching is turned off.
	ReasonCacheDisabled RebuildReason = "cache-disabled"
	// ReasonNewSequences is set when the input holds identifiers missing from the snapshot.
	ReasonNewSequences RebuildReason = "new-sequences"
	// ReasonRemovedSequences is set when the snapshot holds identifiers missing from the input.
	ReasonRemovedSequences RebuildReason = "removed-sequences"
	// ReasonContentChanged is set when residues changed under a kept identifier
	// and content change detection is enabled.
	ReasonContentChanged RebuildReason = "content-changed"
	// ReasonDatabaseTypeChanged is set when the last build used another -dbtype.
	ReasonDatabaseTypeChanged RebuildReason = "database-type-changed"
	// ReasonSnapshotDrift is set when the snapshot no longer matches the last build record.
	ReasonSnapshotDrift RebuildReason = "snapshot-drift"
	// ReasonDatabaseMissing is set when the database artifacts are absent.
	ReasonDatabaseMissing RebuildReason = "database-missing"
)

// BuildPlan is the outcome of comparing the input with the cached state.
type BuildPlan struct {
	Diff    SequenceDiff
	Reasons []RebuildReason
	// IgnoredContentChanges is true when Diff.Changed is non-empty but did not trigger a rebuild.
	IgnoredContentChanges bool
}

// NeedsRebuild reports whether at least one reason applies.
func (p BuildPlan) NeedsRebuild() bool {
	return len(p.Reasons) > 0
}

// Has reports whether reason is part of the plan.
func (p BuildPlan) Has(reason RebuildReason) bool {
	for _, r := range p.Reasons {
		if r == reason {
			return true
		}
	}
	return false
}

// PlanInput gathers everything PlanBuild looks at.
type PlanInput struct {
	Diff                 SequenceDiff
	Force                bool
	CacheEnabled         bool
	DetectContentChanges bool
	DBType               DBType
	// LastBuild is the record of the previous successful build, nil if none.
	LastBuild *BuildInfo
	// SnapshotFingerprint is the fingerprint of the snapshot as read from disk.
	SnapshotFingerprint string
	// DatabaseExists reports whether the database artifacts are present.
	DatabaseExists bool
}

// PlanBuild decides whether the database must be rebuilt.
func PlanBuild(in PlanInput) BuildPlan {
	plan := BuildPlan{Diff: in.Diff}

	if in.Force {
		plan.Reasons = append(plan.Reasons, ReasonForced)
	}
	if !in.CacheEnabled {
		plan.Reasons = append(plan.Reasons, ReasonCacheDisabled)
	}
	if !in.Diff.New.IsEmpty() {
		plan.Reasons = append(plan.Reasons, ReasonNewSequences)
	}
	if !in.Diff.Removed.IsEmpty() {
		plan.Reasons = append(plan.Reasons, ReasonRemovedSequences)
	}
	if in.Diff.HasContentChanges() {
		if in.DetectContentChanges {
			plan.Reasons = append(plan.Reasons, ReasonContentChanged)
		} else {
			plan.IgnoredContentChanges = true
		}
	}
	if in.LastBuild != nil {
		if in.LastBuild.DBType != in.DBType {
			plan.Reasons = append(plan.Reasons, ReasonDatabaseTypeChanged)
		}
		if in.LastBuild.Fingerprint != in.SnapshotFingerprint {
			plan.Reasons = append(plan.Reasons, ReasonSnapshotDrift)
		}
	}
	if !plan.NeedsRebuild() && !in.DatabaseExists {
		plan.Reasons = append(plan.Reasons, ReasonDatabaseMissing)
	}

	return plan
}
