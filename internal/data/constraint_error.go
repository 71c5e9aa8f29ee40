package data

import (
	"strings"

	"fforecasting/server/internal/data/model/ent"
)

func isDuplicateCodeConstraint(err error) bool {
	return isDuplicateUniqueConstraint(err, "invite_code", "brand_invites.code", "code")
}

func isDuplicateEmailConstraint(err error) bool {
	return isDuplicateUniqueConstraint(err, "account_email", "accounts.email", "email")
}

func isDuplicateProfileConstraint(err error) bool {
	return isDuplicateUniqueConstraint(err, "profile_account_id", "profiles.account_id", "account_id")
}

func isDuplicateBrandConstraint(err error) bool {
	return isDuplicateUniqueConstraint(err, "brand_profile_id", "brands.profile_id", "profile_id")
}

func isDuplicateStylistConstraint(err error) bool {
	return isDuplicateUniqueConstraint(err, "stylist_profile_id", "stylists.profile_id", "profile_id")
}

func isDuplicateUniqueConstraint(err error, keys ...string) bool {
	if err == nil || !ent.IsConstraintError(err) {
		return false
	}

	// 仅识别“唯一键冲突”语义，避免把外键等其他约束错误误判为“重复”。
	msg := strings.ToLower(err.Error())
	if !strings.Contains(msg, "duplicate") && !strings.Contains(msg, "unique") {
		return false
	}

	for _, key := range keys {
		if strings.Contains(msg, strings.ToLower(key)) {
			return true
		}
	}
	return false
}
