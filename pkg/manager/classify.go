package manager

import (
	"time"

	"github.com/curatord/curatord/pkg/storage"
)

// classifyInput carries everything the rank-1..4 classification needs
// for a single candidate. previousStatus is the zero value when the
// candidate had no prior snapshot row.
type classifyInput struct {
	inLibrary      bool
	previousStatus storage.MediaStatus

	// sessionSubscribed short-circuits classification to SUBSCRIBED, used
	// by the Actor Subscription Reconciler's session-scoped dedup between
	// rank 2 and rank 3 so one work is never subscribed twice across
	// actors sharing a filmography entry in the same scan.
	sessionSubscribed bool

	releaseDate *time.Time

	// nativeVariant switches rank 3 from "release_date > today =>
	// PENDING_RELEASE" to "release_date missing => keep previous status",
	// matching native collections' no-churn rule for dateless TMDb
	// records.
	nativeVariant bool
}

// classifyStatus applies the rank-1..4 precedence ordering common to the
// Collection Reconciler, the native-collection reconciler, and the Actor
// Subscription Reconciler. The first matching rank wins.
func classifyStatus(in classifyInput, today time.Time) storage.MediaStatus {
	if in.inLibrary {
		return storage.StatusInLibrary
	}
	if in.previousStatus == storage.StatusSubscribed {
		return storage.StatusSubscribed
	}
	if in.sessionSubscribed {
		return storage.StatusSubscribed
	}

	if in.releaseDate == nil {
		if in.nativeVariant && in.previousStatus != "" {
			return in.previousStatus
		}
		return storage.StatusMissing
	}

	if in.releaseDate.After(today) {
		return storage.StatusPendingRelease
	}
	return storage.StatusMissing
}

// healthCounts summarizes a snapshot's status distribution.
func healthCounts(snapshot []storage.SnapshotItem) (inLibrary, missing int, health storage.CollectionHealth) {
	for _, item := range snapshot {
		switch item.Status {
		case storage.StatusInLibrary:
			inLibrary++
		case storage.StatusMissing:
			missing++
		}
	}
	health = storage.HealthOK
	if missing > 0 {
		health = storage.HealthHasMissing
	}
	return inLibrary, missing, health
}

func previousStatusFor(prev []storage.SnapshotItem, tmdbID string) storage.MediaStatus {
	for _, p := range prev {
		if p.TMDBID == tmdbID {
			return p.Status
		}
	}
	return ""
}
