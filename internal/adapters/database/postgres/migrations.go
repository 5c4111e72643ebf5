package postgres

import "github.com/wupitch/wupitch-server/internal/domain/entity"

// Migrations is the list of all gorm migrations for the database.
var Migrations = []interface{}{
	&entity.Area{},
	&entity.Sports{},
	&entity.Extra{},
	&entity.Account{},
	&entity.AccountSportsRelation{},
	&entity.Club{},
	&entity.ClubExtraRelation{},
	&entity.AccountClubRelation{},
}
