// Package documents renders printable and exportable files: shipping
// labels, order invoices and batch manifests.
package documents

import "time"

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
