package bar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/ivaaaan/candlestream/pkg/questdb/mock"
	"github.com/ivaaaan/candlestream/pkg/util"
)

func testBar(now time.Time) *Bar {
	return &Bar{
		Timestamp:     now,
		Symbol:        "BTCUSDT",
		Window:        "1m",
		Open:          10000,
		High:          10100,
		Low:           9900,
		Close:         10050,
		Volume:        123.5,
		TradeCount:    42,
		WeightedPrice: 10020.5,
		AveragePrice:  10010.1,
		StdDevPrices:  35.2,
		StdDevSizes:   1.7,
		TimeVelocity:  0.7,
		Entropy:       0.91,
	}
}

func TestBar_Store(t *testing.T) {
	now := time.Now()
	testCases := []struct {
		name     string
		mockFn   func(testData *Bar, mock *mock.MockQuestDBClient)
		assertFn func(t *testing.T, err error)
		testData *Bar
	}{
		{
			name: "success",
			mockFn: func(testData *Bar, mock *mock.MockQuestDBClient) {
				mock.EXPECT().Exec(
					gomock.Any(),
					gomock.Any(),
					testData.Timestamp,
					testData.Symbol,
					testData.Window,
					testData.Open,
					testData.High,
					testData.Low,
					testData.Close,
					testData.Volume,
					testData.TradeCount,
					testData.WeightedPrice,
					testData.AveragePrice,
					testData.StdDevPrices,
					testData.StdDevSizes,
					testData.TimeVelocity,
					testData.Entropy,
				).Return(nil)
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
			testData: testBar(now),
		},
		{
			name: "error - exec fails",
			mockFn: func(testData *Bar, mock *mock.MockQuestDBClient) {
				mock.EXPECT().Exec(
					gomock.Any(), gomock.Any(),
					testData.Timestamp, testData.Symbol, testData.Window,
					testData.Open, testData.High, testData.Low, testData.Close,
					testData.Volume, testData.TradeCount, testData.WeightedPrice,
					testData.AveragePrice, testData.StdDevPrices, testData.StdDevSizes,
					testData.TimeVelocity, testData.Entropy,
				).Return(errors.New("exec failed"))
			},
			assertFn: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
			testData: testBar(now),
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mock.NewMockQuestDBClient(ctrl)
			testCase.mockFn(testCase.testData, client)

			err := NewRepository(client).Store(context.Background(), testCase.testData)
			testCase.assertFn(t, err)
		})
	}
}

func TestBar_StoreBatch(t *testing.T) {
	now := time.Now()
	testCases := []struct {
		name     string
		mockFn   func(mock *mock.MockQuestDBClient)
		assertFn func(t *testing.T, err error)
		testData []*Bar
	}{
		{
			name: "success",
			mockFn: func(mock *mock.MockQuestDBClient) {
				mock.EXPECT().CopyFrom(
					gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
				).Return(int64(2), nil)
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
			testData: []*Bar{testBar(now), testBar(now.Add(time.Minute))},
		},
		{
			name:   "empty batch is a no-op",
			mockFn: func(mock *mock.MockQuestDBClient) {},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
			testData: nil,
		},
		{
			name: "error - copy fails",
			mockFn: func(mock *mock.MockQuestDBClient) {
				mock.EXPECT().CopyFrom(
					gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
				).Return(int64(0), errors.New("copy failed"))
			},
			assertFn: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
			testData: []*Bar{testBar(now)},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mock.NewMockQuestDBClient(ctrl)
			testCase.mockFn(client)

			err := NewRepository(client).StoreBatch(context.Background(), testCase.testData)
			testCase.assertFn(t, err)
		})
	}
}

func TestBar_GetByFilter(t *testing.T) {
	now := time.Now()
	testCases := []struct {
		name     string
		mockFn   func(mockClient *mock.MockQuestDBClient, mockRows *mock.MockRowsInterface)
		assertFn func(t *testing.T, bars []*Bar, err error)
		filter   Filter
	}{
		{
			name: "success - two rows",
			mockFn: func(mockClient *mock.MockQuestDBClient, mockRows *mock.MockRowsInterface) {
				mockClient.EXPECT().Query(
					gomock.Any(), gomock.Any(), "BTCUSDT", "1m", now, 10,
				).Return(mockRows, nil)

				gomock.InOrder(
					mockRows.EXPECT().Next().Return(true),
					mockRows.EXPECT().Scan(gomock.Any()).Return(nil),
					mockRows.EXPECT().Next().Return(true),
					mockRows.EXPECT().Scan(gomock.Any()).Return(nil),
					mockRows.EXPECT().Next().Return(false),
				)
				mockRows.EXPECT().Err().Return(nil)
				mockRows.EXPECT().Close()
			},
			assertFn: func(t *testing.T, bars []*Bar, err error) {
				assert.NoError(t, err)
				assert.Len(t, bars, 2)
			},
			filter: Filter{
				Symbol: "BTCUSDT",
				Window: "1m",
				From:   util.TimePointer(now),
				Limit:  10,
			},
		},
		{
			name: "error - query fails",
			mockFn: func(mockClient *mock.MockQuestDBClient, mockRows *mock.MockRowsInterface) {
				mockClient.EXPECT().Query(
					gomock.Any(), gomock.Any(), "BTCUSDT",
				).Return(nil, errors.New("query failed"))
			},
			assertFn: func(t *testing.T, bars []*Bar, err error) {
				assert.Error(t, err)
				assert.Nil(t, bars)
			},
			filter: Filter{Symbol: "BTCUSDT"},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := mock.NewMockQuestDBClient(ctrl)
			mockRows := mock.NewMockRowsInterface(ctrl)
			testCase.mockFn(mockClient, mockRows)

			bars, err := NewRepository(mockClient).GetByFilter(context.Background(), testCase.filter)
			testCase.assertFn(t, bars, err)
		})
	}
}
