package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"seatwatch-srv/internal/auth"
	"seatwatch-srv/internal/model"
	"seatwatch-srv/internal/user"
	pkgErrors "seatwatch-srv/pkg/errors"
	"seatwatch-srv/pkg/jwt"
	"seatwatch-srv/pkg/kakao"
	"seatwatch-srv/pkg/log"
)

type fakeKakao struct {
	info kakao.UserInfo
	err  error
}

func (f *fakeKakao) UserInfo(context.Context, string) (kakao.UserInfo, error) {
	return f.info, f.err
}

type fakeUsers struct {
	upserted user.UpsertKakaoInput
	err      error
}

func (f *fakeUsers) Detail(context.Context, string) (model.User, error) {
	return model.User{}, user.ErrUserNotFound
}

func (f *fakeUsers) UpsertKakao(_ context.Context, in user.UpsertKakaoInput) (model.User, error) {
	if f.err != nil {
		return model.User{}, f.err
	}
	f.upserted = in
	return model.User{
		ID:      "6f9619ff-8b86-4d01-b42d-00cf4fc964ff",
		KakaoID: in.KakaoID,
		Name:    in.Name,
		Email:   in.Email,
	}, nil
}

func (f *fakeUsers) UpdatePushToken(context.Context, string, string) error { return nil }

func newTestUsecase(k *fakeKakao, users *fakeUsers) auth.UseCase {
	mgr := jwt.NewManager("test-secret", "seatwatch-srv", time.Hour)
	return New(log.NewNoop(), k, users, mgr)
}

func TestLoginKakao(t *testing.T) {
	k := &fakeKakao{info: kakao.UserInfo{KakaoID: 42, Nickname: "홍길동", Email: "hong@example.com"}}
	users := &fakeUsers{}
	uc := newTestUsecase(k, users)

	out, err := uc.LoginKakao(context.Background(), "kakao-token")
	if err != nil {
		t.Fatalf("LoginKakao() error = %v", err)
	}
	if out.Token == "" {
		t.Fatal("LoginKakao() issued empty token")
	}
	if out.User.KakaoID != 42 || out.User.Name != "홍길동" {
		t.Fatalf("LoginKakao() user = %+v", out.User)
	}
	if users.upserted.KakaoID != 42 {
		t.Fatalf("upserted input = %+v", users.upserted)
	}
}

func TestLoginKakaoErrors(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		kakaoErr error
		wantErr  error
	}{
		{
			name:    "missing token",
			token:   "   ",
			wantErr: auth.ErrMissingAccessToken,
		},
		{
			name:     "rejected token",
			token:    "bad",
			kakaoErr: kakao.ErrInvalidToken,
			wantErr:  auth.ErrInvalidKakaoToken,
		},
		{
			name:     "kakao outage",
			token:    "ok",
			kakaoErr: pkgErrors.NewTransientError("kakao.UserInfo", errors.New("503")),
			wantErr:  auth.ErrKakaoUnavailable,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUsecase(&fakeKakao{err: tt.kakaoErr}, &fakeUsers{})
			_, err := uc.LoginKakao(context.Background(), tt.token)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("LoginKakao() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
