package domain

import "sort"

// ConversationKey is the canonical identifier of the thread between two
// participants. Stored history is addressed by it, so the derivation
// rule below is a fixed contract.
type ConversationKey string

// RoleLookup resolves the role of a registered participant.
type RoleLookup interface {
	RoleOf(id string) (Role, bool)
}

// ResolveKey canonicalizes a pair of participant ids into one stable
// key: when exactly one side is an instructor, that id goes second;
// any other pairing (same role, or ids the directory does not know)
// falls back to lexicographic ordering. Symmetric in its arguments.
func ResolveKey(roles RoleLookup, idA, idB string) ConversationKey {
	roleA, okA := roles.RoleOf(idA)
	roleB, okB := roles.RoleOf(idB)
	instructorA := okA && roleA == RoleInstructor
	instructorB := okB && roleB == RoleInstructor

	switch {
	case instructorA && !instructorB:
		return joinKey(idB, idA)
	case instructorB && !instructorA:
		return joinKey(idA, idB)
	default:
		pair := []string{idA, idB}
		sort.Strings(pair)
		return joinKey(pair[0], pair[1])
	}
}

func joinKey(first, second string) ConversationKey {
	return ConversationKey(first + "-" + second)
}
