package postgre

import (
	"context"
	"database/sql"
	"time"

	"seatwatch-srv/internal/model"
	"seatwatch-srv/internal/user"
	"seatwatch-srv/internal/user/repository"
	"seatwatch-srv/pkg/postgre"
)

const createQuery = `
	INSERT INTO users (id, kakao_id, name, email, push_token, created_at, updated_at)
	VALUES ($1, $2, $3, $4, '', $5, $5)`

func (repo implRepository) Create(ctx context.Context, opt repository.CreateOption) (model.User, error) {
	encEmail, err := repo.sealOptional(opt.Email)
	if err != nil {
		repo.l.Errorf(ctx, "internal.user.repository.postgre.Create.Encrypt: %v", err)
		return model.User{}, err
	}

	now := time.Now().UTC()
	u := model.User{
		ID:        postgre.NewUUID(),
		KakaoID:   opt.KakaoID,
		Name:      opt.Name,
		Email:     opt.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := repo.db.ExecContext(ctx, createQuery, u.ID, u.KakaoID, u.Name, encEmail, now); err != nil {
		repo.l.Errorf(ctx, "internal.user.repository.postgre.Create.ExecContext: %v", err)
		return model.User{}, err
	}
	return u, nil
}

const getByIDQuery = `
	SELECT id, kakao_id, name, email, push_token, created_at, updated_at
	FROM users
	WHERE id = $1`

func (repo implRepository) GetByID(ctx context.Context, id string) (model.User, error) {
	return repo.getOne(ctx, getByIDQuery, id)
}

const getByKakaoIDQuery = `
	SELECT id, kakao_id, name, email, push_token, created_at, updated_at
	FROM users
	WHERE kakao_id = $1`

func (repo implRepository) GetByKakaoID(ctx context.Context, kakaoID int64) (model.User, error) {
	return repo.getOne(ctx, getByKakaoIDQuery, kakaoID)
}

func (repo implRepository) getOne(ctx context.Context, query string, arg any) (model.User, error) {
	var (
		u       model.User
		email   string
		pushTok string
	)
	err := repo.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.KakaoID, &u.Name, &email, &pushTok, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.User{}, user.ErrUserNotFound
	}
	if err != nil {
		repo.l.Errorf(ctx, "internal.user.repository.postgre.getOne.Scan: %v", err)
		return model.User{}, err
	}

	if u.Email, err = repo.openOptional(email); err != nil {
		repo.l.Errorf(ctx, "internal.user.repository.postgre.getOne.DecryptEmail: %v", err)
		return model.User{}, err
	}
	if u.PushToken, err = repo.openOptional(pushTok); err != nil {
		repo.l.Errorf(ctx, "internal.user.repository.postgre.getOne.DecryptPushToken: %v", err)
		return model.User{}, err
	}
	return u, nil
}

const updateProfileQuery = `
	UPDATE users SET name = $2, email = $3, updated_at = $4
	WHERE id = $1`

func (repo implRepository) UpdateProfile(ctx context.Context, id string, opt repository.UpdateProfileOption) error {
	encEmail, err := repo.sealOptional(opt.Email)
	if err != nil {
		repo.l.Errorf(ctx, "internal.user.repository.postgre.UpdateProfile.Encrypt: %v", err)
		return err
	}

	res, err := repo.db.ExecContext(ctx, updateProfileQuery, id, opt.Name, encEmail, time.Now().UTC())
	if err != nil {
		repo.l.Errorf(ctx, "internal.user.repository.postgre.UpdateProfile.ExecContext: %v", err)
		return err
	}
	return checkAffected(res)
}

const updatePushTokenQuery = `
	UPDATE users SET push_token = $2, updated_at = $3
	WHERE id = $1`

func (repo implRepository) UpdatePushToken(ctx context.Context, id, token string) error {
	encToken, err := repo.sealOptional(token)
	if err != nil {
		repo.l.Errorf(ctx, "internal.user.repository.postgre.UpdatePushToken.Encrypt: %v", err)
		return err
	}

	res, err := repo.db.ExecContext(ctx, updatePushTokenQuery, id, encToken, time.Now().UTC())
	if err != nil {
		repo.l.Errorf(ctx, "internal.user.repository.postgre.UpdatePushToken.ExecContext: %v", err)
		return err
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// sealOptional encrypts a value, passing the empty string through so
// absent fields stay absent.
func (repo implRepository) sealOptional(v string) (string, error) {
	if v == "" {
		return "", nil
	}
	return repo.enc.Encrypt(v)
}

func (repo implRepository) openOptional(v string) (string, error) {
	if v == "" {
		return "", nil
	}
	return repo.enc.Decrypt(v)
}
