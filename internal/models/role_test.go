package models

import "testing"

func TestCapabilityPredicates(t *testing.T) {
	cases := []struct {
		name string
		fn   func(UserRole) bool
		want map[UserRole]bool
	}{
		{
			name: "CanAnswerUnanswered",
			fn:   CanAnswerUnanswered,
			want: map[UserRole]bool{RoleStudent: false, RoleExpert: true, RoleFaculty: true, RoleOwner: true},
		},
		{
			name: "CanModerateForum",
			fn:   CanModerateForum,
			want: map[UserRole]bool{RoleStudent: false, RoleExpert: false, RoleFaculty: true, RoleOwner: true},
		},
		{
			name: "CanReviewResource",
			fn:   CanReviewResource,
			want: map[UserRole]bool{RoleStudent: false, RoleExpert: true, RoleFaculty: true, RoleOwner: true},
		},
		{
			name: "CanAutoApproveResource",
			fn:   CanAutoApproveResource,
			want: map[UserRole]bool{RoleStudent: false, RoleExpert: false, RoleFaculty: true, RoleOwner: true},
		},
		{
			name: "CanProposeProject",
			fn:   CanProposeProject,
			want: map[UserRole]bool{RoleStudent: false, RoleExpert: true, RoleFaculty: true, RoleOwner: true},
		},
		{
			name: "CanAccessDirectory",
			fn:   CanAccessDirectory,
			want: map[UserRole]bool{RoleStudent: false, RoleExpert: true, RoleFaculty: true, RoleOwner: true},
		},
		{
			name: "CanModerateChallenge",
			fn:   CanModerateChallenge,
			want: map[UserRole]bool{RoleStudent: false, RoleExpert: false, RoleFaculty: true, RoleOwner: true},
		},
		{
			name: "CanResolveReports",
			fn:   CanResolveReports,
			want: map[UserRole]bool{RoleStudent: false, RoleExpert: false, RoleFaculty: false, RoleOwner: true},
		},
		{
			name: "CanBroadcast",
			fn:   CanBroadcast,
			want: map[UserRole]bool{RoleStudent: false, RoleExpert: false, RoleFaculty: false, RoleOwner: true},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for role, want := range tc.want {
				if got := tc.fn(role); got != want {
					t.Errorf("%s(%s) = %v, want %v", tc.name, role, got, want)
				}
			}
		})
	}
}

func TestCanPromote(t *testing.T) {
	cases := []struct {
		name    string
		acting  UserRole
		target  UserRole
		newRole UserRole
		want    bool
	}{
		{"OwnerPromotesStudentToFaculty", RoleOwner, RoleStudent, RoleFaculty, true},
		{"OwnerDemotesFaculty", RoleOwner, RoleFaculty, RoleStudent, true},
		{"OwnerCannotTouchOwner", RoleOwner, RoleOwner, RoleStudent, false},
		{"NobodyGrantsOwner", RoleOwner, RoleStudent, RoleOwner, false},
		{"FacultyPromotesStudentToExpert", RoleFaculty, RoleStudent, RoleExpert, true},
		{"FacultyDemotesExpert", RoleFaculty, RoleExpert, RoleStudent, true},
		{"FacultyCannotGrantFaculty", RoleFaculty, RoleStudent, RoleFaculty, false},
		{"FacultyCannotTouchFaculty", RoleFaculty, RoleFaculty, RoleStudent, false},
		{"ExpertHasNoPromotionPower", RoleExpert, RoleStudent, RoleExpert, false},
		{"StudentHasNoPromotionPower", RoleStudent, RoleStudent, RoleExpert, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanPromote(tc.acting, tc.target, tc.newRole); got != tc.want {
				t.Errorf("CanPromote(%s, %s, %s) = %v, want %v", tc.acting, tc.target, tc.newRole, got, tc.want)
			}
		})
	}
}
