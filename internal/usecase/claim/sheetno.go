package claim

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"weldtrack-backend/internal/domain/catalog"
)

// yardCode maps the known yard workstations to themselves and anything
// else to the "99" sentinel.
func yardCode(workstation string) string {
	switch workstation {
	case "Y1", "Y2", "Y3":
		return workstation
	}
	return "99"
}

// GenerateSheetNo derives the next sheet number for a yard/category/year
// by scanning the sheet numbers of existing claims: prefix is
// twoDigitYear + yardCode + categoryCode, the serial is the maximum
// numeric two-character suffix among matching prefixes plus one,
// zero-padded. Non-numeric suffixes are skipped. This is scan-and-
// increment, not a reserved counter; callers that need uniqueness run
// it inside the same transaction that persists the claim.
func GenerateSheetNo(workstation string, category catalog.Category, existingSheetNos []string, now time.Time) string {
	year := now.Format("06")
	prefix := year + yardCode(workstation) + category.Code()

	maxSerial := 0
	for _, no := range existingSheetNos {
		if !strings.HasPrefix(no, prefix) || len(no) < 2 {
			continue
		}
		n, err := strconv.Atoi(no[len(no)-2:])
		if err != nil {
			continue
		}
		if n > maxSerial {
			maxSerial = n
		}
	}
	return fmt.Sprintf("%s%02d", prefix, maxSerial+1)
}
