package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// DefaultLimit is the page size used when the caller does not ask for one.
const DefaultLimit = 50

// EncodeMultiFieldToken creates a token with any number of string fields
// This provides flexibility for different pagination strategies
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	tokenStr := string(decodedBytes)
	parts := strings.Split(tokenStr, "|")
	return parts, nil
}

// EncodeOffsetToken creates a token pointing at offset within a list scoped by filter.
// The ledger is append-only, so an offset stays stable between pages.
func EncodeOffsetToken(offset int, filter string) string {
	return EncodeMultiFieldToken(strconv.Itoa(offset), filter)
}

// DecodeOffsetToken parses a token produced by EncodeOffsetToken.
// It fails when the token was issued for a different filter.
func DecodeOffsetToken(token string, filter string) (int, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return 0, err
	}
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid pagination token format (split)")
	}
	offset, err := strconv.Atoi(parts[0])
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("invalid pagination token format (offset parse)")
	}
	if parts[1] != filter {
		return 0, fmt.Errorf("pagination token does not match the requested filter")
	}
	return offset, nil
}

// Window returns the [start, end) bounds of one page over total items and whether more items follow.
func Window(total, offset, limit int) (start, end int, hasMore bool) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	start = offset
	if start > total {
		start = total
	}
	end = start + limit
	if end > total {
		end = total
	}
	return start, end, end < total
}
