package service

import (
	"strconv"
	"strings"
)

// UsernameBase derives the base login handle from a first/last name pair:
// lowercase "first.last" built from the first whitespace token of each part,
// with periods stripped.
func UsernameBase(firstName, lastName string) string {
	return strings.ToLower(firstToken(firstName) + "." + firstToken(lastName))
}

func firstToken(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return strings.ReplaceAll(fields[0], ".", "")
}

// AllocateUsername derives a unique handle from the base and the existing
// handles containing it, ordered by creation. An exact two-part collision
// appends ".1"; a suffixed collision bumps the numeric suffix to the next
// free integer. Collisions introduced after the existing set was read are
// the caller's accepted risk.
func AllocateUsername(base string, existing []string) string {
	username := base
	for _, taken := range existing {
		takenParts := strings.Split(taken, ".")
		if len(takenParts) < 2 {
			continue
		}
		current := strings.Split(username, ".")
		if current[0] != takenParts[0] || current[1] != takenParts[1] {
			continue
		}
		if len(takenParts) == 2 {
			username = username + ".1"
			continue
		}
		count, err := strconv.Atoi(takenParts[2])
		if err != nil {
			continue
		}
		count++
		if len(takenParts) == 3 {
			takenParts[2] = strconv.Itoa(count)
			username = strings.Join(takenParts, ".")
		} else {
			username = username + "." + strconv.Itoa(count)
		}
	}
	return username
}
