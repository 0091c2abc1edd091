package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type rolesStub map[string]Role

func (r rolesStub) RoleOf(id string) (Role, bool) {
	role, ok := r[id]
	return role, ok
}

func TestResolveKey_Instructor_Goes_Second(t *testing.T) {
	req := require.New(t)
	roles := rolesStub{"student_1": RoleStudent, "instructor_1": RoleInstructor}

	// When the pair mixes a student and an instructor
	key := ResolveKey(roles, "instructor_1", "student_1")

	// Then the instructor id always closes the key
	req.Equal(ConversationKey("student_1-instructor_1"), key)
}

func TestResolveKey_Is_Symmetric(t *testing.T) {
	req := require.New(t)
	roles := rolesStub{"student_1": RoleStudent, "instructor_1": RoleInstructor}

	// When the same pair is resolved in both argument orders
	keyAB := ResolveKey(roles, "student_1", "instructor_1")
	keyBA := ResolveKey(roles, "instructor_1", "student_1")

	// Then both orders map to the same conversation
	req.Equal(keyAB, keyBA)
}

func TestResolveKey_Same_Role_Falls_Back_To_Lexicographic(t *testing.T) {
	req := require.New(t)
	roles := rolesStub{"student_2": RoleStudent, "student_1": RoleStudent}

	// When both sides are students
	key := ResolveKey(roles, "student_2", "student_1")

	// Then the smaller id goes first
	req.Equal(ConversationKey("student_1-student_2"), key)
}

func TestResolveKey_Two_Instructors_Stay_Symmetric(t *testing.T) {
	req := require.New(t)
	roles := rolesStub{"instructor_b": RoleInstructor, "instructor_a": RoleInstructor}

	// When both sides are instructors
	keyAB := ResolveKey(roles, "instructor_b", "instructor_a")
	keyBA := ResolveKey(roles, "instructor_a", "instructor_b")

	// Then ordering is lexicographic and stable across argument order
	req.Equal(ConversationKey("instructor_a-instructor_b"), keyAB)
	req.Equal(keyAB, keyBA)
}

func TestResolveKey_Unknown_Participants_Use_Lexicographic(t *testing.T) {
	req := require.New(t)
	roles := rolesStub{}

	// When neither id is registered
	key := ResolveKey(roles, "zoe", "adam")

	// Then the fallback ordering applies
	req.Equal(ConversationKey("adam-zoe"), key)
}

func TestStatus_Before_Is_Forward_Only(t *testing.T) {
	req := require.New(t)

	req.True(StatusSent.Before(StatusDelivered))
	req.True(StatusSent.Before(StatusRead))
	req.True(StatusDelivered.Before(StatusRead))

	req.False(StatusRead.Before(StatusDelivered))
	req.False(StatusDelivered.Before(StatusSent))
	req.False(StatusRead.Before(StatusRead))
}
