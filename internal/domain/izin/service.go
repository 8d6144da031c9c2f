package izin

import "context"

// IzinService defines leave-record management. Verification is the gate:
// only verified rows ever count toward attendance classification.
type IzinService interface {
	List(ctx context.Context, req ListRequest) (ListIzinResponse, error)
	Create(ctx context.Context, req CreateIzinRequest) (IzinResponse, error)
	Verify(ctx context.Context, idIzin int64) (IzinResponse, error)
	Delete(ctx context.Context, idIzin int64) error
}
