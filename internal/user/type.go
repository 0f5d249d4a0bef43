package user

// UpsertKakaoInput carries the verified Kakao profile fields.
type UpsertKakaoInput struct {
	KakaoID int64
	Name    string
	Email   string
}
