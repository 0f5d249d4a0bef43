package usecase

import (
	"context"

	"seatwatch-srv/internal/terminal"
)

func (uc implUsecase) ListDeparture(ctx context.Context) (terminal.DirectoryOutput, error) {
	terminals, err := uc.repo.ListDeparture(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "internal.terminal.usecase.ListDeparture.repo: %v, serving fallback", err)
		terminals, err = uc.fallback.ListDeparture(ctx)
		if err != nil {
			uc.l.Errorf(ctx, "internal.terminal.usecase.ListDeparture.fallback: %v", err)
			return terminal.DirectoryOutput{}, err
		}
		return terminal.DirectoryOutput{Terminals: terminals, Degraded: true}, nil
	}

	return terminal.DirectoryOutput{Terminals: terminals}, nil
}

func (uc implUsecase) ListArrival(ctx context.Context, departureID string) (terminal.DirectoryOutput, error) {
	terminals, err := uc.repo.ListArrival(ctx, departureID)
	if err != nil {
		uc.l.Warnf(ctx, "internal.terminal.usecase.ListArrival.repo: %v, serving fallback", err)
		terminals, err = uc.fallback.ListArrival(ctx, departureID)
		if err != nil {
			uc.l.Errorf(ctx, "internal.terminal.usecase.ListArrival.fallback: %v", err)
			return terminal.DirectoryOutput{}, err
		}
		return terminal.DirectoryOutput{Terminals: terminals, Degraded: true}, nil
	}

	return terminal.DirectoryOutput{Terminals: terminals}, nil
}
