package constants

// SessionCookieName is the cookie holding the board session.
const SessionCookieName = "board_session"

// ContextKeyMemberID is the gin context / session key for the
// authenticated member's id.
const ContextKeyMemberID = "member_id"

// ContextKeyMember is the gin context key for the resolved TeamMember
// record of the authenticated member.
const ContextKeyMember = "member"

// MinPasswordLength is the minimum accepted password length when creating
// a member or changing a password.
const MinPasswordLength = 8
