package gormrepo

import (
	"errors"

	"github.com/yoockh/jardam/internal/utils"
	"gorm.io/gorm"
)

// translate maps gorm sentinels onto the repository sentinels the services
// check with errors.Is. The gorm error stays in the chain.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return utils.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errors.Join(utils.ErrDuplicate, err)
	default:
		return err
	}
}
