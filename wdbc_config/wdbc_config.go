package wdbc_config

const GinPort = "19124"

// 诊断数据集的固定列
const (
	IDColumn    = "id"
	LabelColumn = "diagnosis"

	LabelMalignant = "M"
	LabelBenign    = "B"
)

// FeatureFamilies 形态学特征族,每族含 mean/se/worst 三个变体列
var FeatureFamilies = []string{
	"radius",
	"texture",
	"perimeter",
	"area",
	"smoothness",
	"compactness",
	"concavity",
	"concave points",
	"symmetry",
	"fractal_dimension",
}

// VariantSuffixes 每个特征族的三个测量变体后缀
var VariantSuffixes = []string{"_mean", "_se", "_worst"}

// 划分与交叉验证默认值
const (
	DefaultFolds     = 5
	DefaultSeed      = int64(42)
	DefaultEvalRatio = 0.2
)

// 线性分类器默认配置
const (
	DefaultCost   = 0.1
	DefaultEpochs = 200
)

// DefaultCostGrid 代价参数网格,按枚举序评估,平手取先枚举者
var DefaultCostGrid = []float64{0.01, 0.1, 1, 10, 100}

// 随机森林默认配置
const (
	DefaultTrees          = 100
	DefaultMaxDepth       = 8
	DefaultMinSamplesLeaf = 2
)
