package query

import (
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftescrow/base/ctx"
	"github.com/x-xyz/nftescrow/base/database/mongoclient"
	"github.com/x-xyz/nftescrow/domain"
)

var (
	mockCTX = ctx.Background()
)

const (
	mockTable = domain.TableWallets
	dbName    = "testdb"
)

type dummy struct {
	Dummy  string `json:"dummy" bson:"dummy"`
	Amount int64  `json:"amount" bson:"amount"`
}

type querySuite struct {
	suite.Suite
	im       *impl
	mongoURI string
}

func (q *querySuite) SetupSuite() {
	q.mongoURI = os.Getenv("TEST_MONGO_URI")
	if q.mongoURI == "" {
		q.T().Skip("TEST_MONGO_URI not set")
	}
	q.im = New(mongoclient.MustConnectMongoClient(q.mongoURI, "admin", dbName, false, true, 1), false).(*impl)
}

func (q *querySuite) SetupTest() {
	col := q.im.client.Database(q.im.client.DbName).Collection(string(mockTable))
	q.Require().NoError(col.Drop(mockCTX))
	_, err := col.Indexes().CreateOne(mockCTX, mongo.IndexModel{
		Keys:    bson.D{{Key: "dummy", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	q.Require().NoError(err)
}

func (q *querySuite) TestInsertShouldFailWithDuplicateKey() {
	q.Require().NoError(q.im.Insert(mockCTX, mockTable, dummy{"a", 1}))
	q.Equal(ErrDuplicateKey, q.im.Insert(mockCTX, mockTable, dummy{"a", 2}))
	q.Require().NoError(q.im.Insert(mockCTX, mockTable, dummy{"b", 2}))

	n, err := q.im.Count(mockCTX, mockTable, bson.M{})
	q.Require().NoError(err)
	q.Equal(2, n)
}

func (q *querySuite) TestFindOne() {
	q.Require().NoError(q.im.Insert(mockCTX, mockTable, dummy{"a", 1}))

	res := dummy{}
	q.Require().NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "a"}, &res))
	q.Equal(dummy{"a", 1}, res)

	q.Equal(ErrNotFound, q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "z"}, &res))
}

func (q *querySuite) TestCustomPatchGuard() {
	q.Require().NoError(q.im.Insert(mockCTX, mockTable, dummy{"a", 10}))

	debit := func(n int64) error {
		return q.im.CustomPatch(mockCTX, mockTable,
			bson.M{"dummy": "a", "amount": bson.M{"$gte": n}},
			bson.M{"$inc": bson.M{"amount": -n}}, false)
	}
	q.NoError(debit(7))
	q.Equal(ErrNotFound, debit(7))
	q.NoError(debit(3))

	res := dummy{}
	q.Require().NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"dummy": "a"}, &res))
	q.Equal(int64(0), res.Amount)
}

func (q *querySuite) TestSearchNSorts() {
	for _, d := range []dummy{{"a", 3}, {"b", 1}, {"c", 2}} {
		q.Require().NoError(q.im.Insert(mockCTX, mockTable, d))
	}
	var res []dummy
	q.Require().NoError(q.im.SearchNSorts(mockCTX, mockTable, 0, 2, []string{"-amount"}, bson.M{}, &res))
	q.Equal([]dummy{{"a", 3}, {"c", 2}}, res)

	res = nil
	q.Require().NoError(q.im.Search(mockCTX, mockTable, 1, 5, "amount", bson.M{}, &res))
	q.Equal([]dummy{{"c", 2}, {"a", 3}}, res)
}

func (q *querySuite) TestRunWithTransactionRollback() {
	errAbort := xerrors.New("abort")
	err := q.im.RunWithTransaction(mockCTX, func(c ctx.Ctx) error {
		if err := q.im.Insert(c, mockTable, dummy{"tx", 1}); err != nil {
			return err
		}
		return errAbort
	})
	q.Equal(errAbort, err)

	n, err := q.im.Count(mockCTX, mockTable, bson.M{"dummy": "tx"})
	q.Require().NoError(err)
	q.Equal(0, n)

	q.Require().NoError(q.im.RunWithTransaction(mockCTX, func(c ctx.Ctx) error {
		return q.im.Insert(c, mockTable, dummy{"tx", 1})
	}))
	n, err = q.im.Count(mockCTX, mockTable, bson.M{"dummy": "tx"})
	q.Require().NoError(err)
	q.Equal(1, n)
}

func (q *querySuite) TestRunWithTransactionRollbackWithCheckIndex() {
	im := New(q.im.client, true)
	errAbort := xerrors.New("abort")

	err := im.RunWithTransaction(mockCTX, func(c ctx.Ctx) error {
		if err := im.Insert(c, mockTable, dummy{"tx", 1}); err != nil {
			return err
		}
		// explain is skipped inside the session
		res := dummy{}
		if err := im.FindOne(c, mockTable, bson.M{"amount": 1}, &res); err != nil {
			return err
		}
		return errAbort
	})
	q.Equal(errAbort, err)

	n, err := im.Count(mockCTX, mockTable, bson.M{"dummy": "tx"})
	q.Require().NoError(err)
	q.Equal(0, n)
}

func TestQuerySuite(t *testing.T) {
	suite.Run(t, new(querySuite))
}
