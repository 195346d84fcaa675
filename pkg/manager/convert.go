package manager

import "strconv"

func toTMDBInt(tmdbID string) (int, error) {
	return strconv.Atoi(tmdbID)
}

func toTMDBString(tmdbID int) string {
	return strconv.Itoa(tmdbID)
}
