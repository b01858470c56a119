package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-member-auth/models"
)

var (
	membersTable     = models.Account{}.TableName()
	authoritiesTable = models.Authority{}.TableName()
	productsTable    = models.Product{}.TableName()
)

func buildFindMemberQuery(b sq.StatementBuilderType, loginName string) (string, []any, error) {
	query, args, err := b.
		Select("id", "member_name", "password", "algorithm").
		From(membersTable).
		Where(sq.Eq{"member_name": loginName}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindAuthoritiesQuery(b sq.StatementBuilderType, memberID int64) (string, []any, error) {
	query, args, err := b.
		Select("id", "name").
		From(authoritiesTable).
		Where(sq.Eq{"member": memberID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindAllProductsQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.
		Select("id", "name", "price", "currency").
		From(productsTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
