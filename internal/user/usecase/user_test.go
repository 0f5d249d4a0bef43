package usecase

import (
	"context"
	"errors"
	"testing"

	"seatwatch-srv/internal/model"
	"seatwatch-srv/internal/user"
	"seatwatch-srv/internal/user/repository"
	"seatwatch-srv/pkg/log"
)

const validUserID = "6f9619ff-8b86-4d01-b42d-00cf4fc964ff"

type fakeRepo struct {
	byKakao    map[int64]model.User
	byID       map[string]model.User
	updates    []repository.UpdateProfileOption
	pushTokens map[string]string
	createErr  error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byKakao:    make(map[int64]model.User),
		byID:       make(map[string]model.User),
		pushTokens: make(map[string]string),
	}
}

func (r *fakeRepo) Create(_ context.Context, opt repository.CreateOption) (model.User, error) {
	if r.createErr != nil {
		return model.User{}, r.createErr
	}
	u := model.User{ID: validUserID, KakaoID: opt.KakaoID, Name: opt.Name, Email: opt.Email}
	r.byKakao[opt.KakaoID] = u
	r.byID[u.ID] = u
	return u, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (model.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return model.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeRepo) GetByKakaoID(_ context.Context, kakaoID int64) (model.User, error) {
	u, ok := r.byKakao[kakaoID]
	if !ok {
		return model.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeRepo) UpdateProfile(_ context.Context, id string, opt repository.UpdateProfileOption) error {
	r.updates = append(r.updates, opt)
	u := r.byID[id]
	u.Name, u.Email = opt.Name, opt.Email
	r.byID[id] = u
	r.byKakao[u.KakaoID] = u
	return nil
}

func (r *fakeRepo) UpdatePushToken(_ context.Context, id, token string) error {
	if _, ok := r.byID[id]; !ok {
		return user.ErrUserNotFound
	}
	r.pushTokens[id] = token
	return nil
}

func TestUpsertKakaoCreatesOnFirstSignIn(t *testing.T) {
	repo := newFakeRepo()
	uc := New(log.NewNoop(), repo)

	u, err := uc.UpsertKakao(context.Background(), user.UpsertKakaoInput{
		KakaoID: 42, Name: "홍길동", Email: "hong@example.com",
	})
	if err != nil {
		t.Fatalf("UpsertKakao() error = %v", err)
	}
	if u.KakaoID != 42 || u.Name != "홍길동" {
		t.Fatalf("created user = %+v", u)
	}
}

func TestUpsertKakaoRefreshesProfile(t *testing.T) {
	repo := newFakeRepo()
	uc := New(log.NewNoop(), repo)

	first, _ := uc.UpsertKakao(context.Background(), user.UpsertKakaoInput{
		KakaoID: 42, Name: "old", Email: "old@example.com",
	})
	second, err := uc.UpsertKakao(context.Background(), user.UpsertKakaoInput{
		KakaoID: 42, Name: "new", Email: "new@example.com",
	})
	if err != nil {
		t.Fatalf("UpsertKakao() error = %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("second sign-in created a new user: %s vs %s", second.ID, first.ID)
	}
	if second.Name != "new" || second.Email != "new@example.com" {
		t.Fatalf("profile not refreshed: %+v", second)
	}
	if len(repo.updates) != 1 {
		t.Fatalf("profile updates = %d, want 1", len(repo.updates))
	}
}

func TestUpsertKakaoUnchangedProfileSkipsUpdate(t *testing.T) {
	repo := newFakeRepo()
	uc := New(log.NewNoop(), repo)

	in := user.UpsertKakaoInput{KakaoID: 42, Name: "same", Email: "same@example.com"}
	uc.UpsertKakao(context.Background(), in)
	uc.UpsertKakao(context.Background(), in)

	if len(repo.updates) != 0 {
		t.Fatalf("profile updates = %d, want 0 for unchanged profile", len(repo.updates))
	}
}

func TestUpdatePushToken(t *testing.T) {
	repo := newFakeRepo()
	uc := New(log.NewNoop(), repo)

	uc.UpsertKakao(context.Background(), user.UpsertKakaoInput{KakaoID: 42, Name: "n"})

	if err := uc.UpdatePushToken(context.Background(), validUserID, "ExponentPushToken[abc]"); err != nil {
		t.Fatalf("UpdatePushToken() error = %v", err)
	}
	if repo.pushTokens[validUserID] != "ExponentPushToken[abc]" {
		t.Fatalf("stored token = %q", repo.pushTokens[validUserID])
	}

	if err := uc.UpdatePushToken(context.Background(), "not-a-uuid", "x"); !errors.Is(err, user.ErrInvalidUserID) {
		t.Fatalf("bad id error = %v, want ErrInvalidUserID", err)
	}
	if err := uc.UpdatePushToken(context.Background(), validUserID, "   "); !errors.Is(err, user.ErrInvalidPushToken) {
		t.Fatalf("blank token error = %v, want ErrInvalidPushToken", err)
	}
}
