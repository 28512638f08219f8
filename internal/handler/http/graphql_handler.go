package http

import (
	"context"
	"math"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	usecasecontract "github.com/mikiasgoitom/PetLikes/internal/usecase/contract"
)

const likesSchema = `
	schema {
		query: Query
	}

	type Query {
		likesCount(postId: ID!): LikesCount!
	}

	type LikesCount {
		postId: ID!
		likesCount: Int!
	}
`

// NewGraphQLHandler serves the read-only likes counter query.
func NewGraphQLHandler(likeUsecase usecasecontract.ILikeUseCase) *relay.Handler {
	schema := graphql.MustParseSchema(likesSchema, &queryResolver{likeUsecase: likeUsecase})
	return &relay.Handler{Schema: schema}
}

type queryResolver struct {
	likeUsecase usecasecontract.ILikeUseCase
}

func (q *queryResolver) LikesCount(ctx context.Context, args struct{ PostID graphql.ID }) (*likesCountResolver, error) {
	postID := string(args.PostID)
	n, err := q.likeUsecase.GetLikeCount(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &likesCountResolver{postID: postID, count: n}, nil
}

type likesCountResolver struct {
	postID string
	count  int
}

func (r *likesCountResolver) PostID() graphql.ID { return graphql.ID(r.postID) }

// LikesCount saturates at the GraphQL Int maximum.
func (r *likesCountResolver) LikesCount() int32 {
	if r.count > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(r.count)
}
