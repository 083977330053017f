// Package mapping converts between domain entities and the pgx row models.
// The audit columns convert directly because models.AuditFields and
// domain.AuditFields share one field layout.
package mapping

func convertAll[M, D any](ms []M, convert func(M) D) []D {
	ds := make([]D, len(ms))
	for i, m := range ms {
		ds[i] = convert(m)
	}
	return ds
}
