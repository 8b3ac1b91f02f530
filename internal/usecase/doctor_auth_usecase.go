package usecase

import (
	"crypto/subtle"
	"errors"

	"clinic-booking/config"

	"github.com/sirupsen/logrus"
)

// ErrInvalidCredentials is deliberately generic: the login flow never
// reveals which field was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

type DoctorAuthUsecase interface {
	Login(username, password string) error
}

type doctorAuthUsecase struct {
	cfg config.DoctorConfig
	log *logrus.Logger
}

func NewDoctorAuthUsecase(cfg config.DoctorConfig, log *logrus.Logger) DoctorAuthUsecase {
	return &doctorAuthUsecase{
		cfg: cfg,
		log: log,
	}
}

// Login checks the submitted credentials against the configured doctor
// account. Both comparisons run in constant time and both always run, so
// timing does not leak which field mismatched.
func (u *doctorAuthUsecase) Login(username, password string) error {
	userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(u.cfg.Username))
	passMatch := subtle.ConstantTimeCompare([]byte(password), []byte(u.cfg.Password))

	if userMatch&passMatch != 1 {
		u.log.Warnf("Failed doctor login attempt for username %q", username)
		return ErrInvalidCredentials
	}

	u.log.Info("Doctor logged in")
	return nil
}
