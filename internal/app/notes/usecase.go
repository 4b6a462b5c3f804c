package notes

import (
	"context"

	"lifeos/internal/app/ports"
)

type Request struct {
	Notes string
}

type Response struct {
	Notes string `json:"notes"`
}

type UseCase struct {
	Tx       ports.TxManager
	Profiles ports.ProfileRepository
}

// Execute replaces the free-form notes field. Any string is accepted,
// including empty, which clears it.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	var out Response
	err := u.Tx.RunInTx(ctx, func(txCtx context.Context) error {
		profile, err := u.Profiles.Load(txCtx)
		if err != nil {
			return err
		}
		profile.Notes = req.Notes
		if err := u.Profiles.Save(txCtx, profile); err != nil {
			return err
		}
		out = Response{Notes: profile.Notes}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}
