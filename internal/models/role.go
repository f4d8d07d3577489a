package models

// Capability predicates derived from the role lattice
// Student < Expert < Faculty < Owner. They are pure functions of the
// role value and consult no other state; every authorization decision
// in the service layer goes through them so there is a single source
// of truth instead of role comparisons scattered across call sites.

// CanAnswerUnanswered gates who may give the first answer to an open
// technical question.
func CanAnswerUnanswered(r UserRole) bool {
	return r == RoleOwner || r == RoleFaculty || r == RoleExpert
}

// CanModerateForum gates pinning/featuring questions.
func CanModerateForum(r UserRole) bool {
	return r == RoleFaculty || r == RoleOwner
}

// CanReviewResource gates approve/reject of pending library resources.
func CanReviewResource(r UserRole) bool {
	return r == RoleFaculty || r == RoleExpert || r == RoleOwner
}

// CanAutoApproveResource decides whether a submitted resource skips the
// Pending state entirely.
func CanAutoApproveResource(r UserRole) bool {
	return r == RoleFaculty || r == RoleOwner
}

// CanProposeProject gates posting new project ideas.
func CanProposeProject(r UserRole) bool {
	return r != RoleStudent
}

// CanAccessDirectory gates visibility of the full member directory.
func CanAccessDirectory(r UserRole) bool {
	return r == RoleOwner || r == RoleFaculty || r == RoleExpert
}

// CanModerateChallenge gates accept/reject of weekly challenge
// meeting requests.
func CanModerateChallenge(r UserRole) bool {
	return r == RoleFaculty || r == RoleOwner
}

// CanResolveReports gates the moderation report queue.
func CanResolveReports(r UserRole) bool {
	return r == RoleOwner
}

// CanBroadcast gates hub-wide announcements.
func CanBroadcast(r UserRole) bool {
	return r == RoleOwner
}

// CanPromote reports whether acting may set target's role to newRole.
// Owner may assign any non-owner role to any target except itself (the
// owner identity is a singleton and cannot be demoted). Faculty may
// move Students and Experts between the Student and Expert tiers but
// may not touch Faculty or Owner targets. Expert and Student have no
// promotion capability at all.
func CanPromote(acting, target, newRole UserRole) bool {
	if newRole == RoleOwner {
		return false
	}
	switch acting {
	case RoleOwner:
		return target != RoleOwner
	case RoleFaculty:
		if target != RoleStudent && target != RoleExpert {
			return false
		}
		return newRole == RoleExpert || newRole == RoleStudent
	default:
		return false
	}
}

// ValidRole reports whether r is one of the four known role values.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleStudent, RoleExpert, RoleFaculty, RoleOwner:
		return true
	}
	return false
}
